// Package redact removes credentials from strings and log attributes before
// they are written anywhere a user or operator can read them.
package redact

import (
	"log/slog"
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedHashPlaceholder       = "[REDACTED_HASH]"
)

// Precompiled regex patterns
var (
	// Keywords only count when followed by an assignment, so plain words such
	// as a username "password123" are left alone.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)['"]?\s*[=:]\s*['"]?[^'"&\s]{3,}`)
	secretRegex   = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret)['"]?\s*[=:]\s*['"]?[A-Za-z0-9_\-.~+/]{8,}`,
	)
	// Three-part base64url JWT as issued by login.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
	// Modular-crypt bcrypt hash, e.g. $2a$10$...
	bcryptRegex = regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`)

	// JWTs and hashes go first so the keyword patterns never split them.
	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{jwtTokenRegex, RedactedJWTPlaceholder},
		{bcryptRegex, RedactedHashPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{secretRegex, RedactedKeyPlaceholder},
	}

	// Attribute keys whose values are never logged.
	sensitiveKeys = map[string]bool{
		"password":        true,
		"hashed_password": true,
		"token":           true,
		"jwt_secret":      true,
		"secret":          true,
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Attr is a slog.HandlerOptions.ReplaceAttr function. Values of sensitive
// keys are replaced outright; other string and error values are scrubbed
// with String.
func Attr(_ []string, a slog.Attr) slog.Attr {
	if sensitiveKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, RedactionPlaceholder)
	}

	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return slog.String(a.Key, String(v.String()))
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return slog.String(a.Key, Error(err))
		}
	}
	return a
}
