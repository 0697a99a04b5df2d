package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/study-coordinator/internal/config"
	"github.com/phrazzld/study-coordinator/internal/platform/filestore"
	"github.com/phrazzld/study-coordinator/internal/platform/logger"
	"github.com/phrazzld/study-coordinator/internal/service"
	"github.com/phrazzld/study-coordinator/internal/service/auth"
	"github.com/phrazzld/study-coordinator/internal/store"
)

func testConfig(dataDir string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{DataDir: dataDir},
		Log:     config.LogConfig{Level: "debug", Format: "json"},
		Auth: config.AuthConfig{
			JWTSecret:            strings.Repeat("k", 32),
			TokenLifetimeMinutes: 60,
			BCryptCost:           bcrypt.MinCost,
		},
	}
}

func newTestApp(t *testing.T, dataDir string) *application {
	t.Helper()
	t.Setenv(TokenEnv, "")

	log, _ := logger.GetTestLogger(t)
	app, err := newApplication(context.Background(), testConfig(dataDir), log)
	require.NoError(t, err)
	return app
}

// execute runs the command tree against app and returns what was written
// to stdout.
func execute(t *testing.T, app *application, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd(&rootOptions{app: app})
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func mustExecute(t *testing.T, app *application, args ...string) string {
	t.Helper()
	out, err := execute(t, app, args...)
	require.NoError(t, err, "coordinator %s", strings.Join(args, " "))
	return out
}

func login(t *testing.T, app *application, username, password string) string {
	t.Helper()
	return strings.TrimSpace(mustExecute(t, app, "login", "--username", username, "--password", password))
}

func TestRegisterAndListUsers(t *testing.T) {
	app := newTestApp(t, t.TempDir())

	out := mustExecute(t, app, "register", "--id", "1", "--username", "ada", "--password", "pw", "--name", "Ada")
	assert.Equal(t, "User registered: ada (ID 1)\n", out)
	mustExecute(t, app, "register", "--id", "2", "--username", "bob", "--password", "pw")

	_, err := execute(t, app, "register", "--id", "1", "--username", "eve", "--password", "pw")
	assert.ErrorIs(t, err, store.ErrDuplicateID)

	_, err = execute(t, app, "register", "--id", "3", "--username", "ada", "--password", "pw")
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	out = mustExecute(t, app, "users")
	assert.Equal(t, "User IDs and Usernames:\nID: 1 - Username: ada\nID: 2 - Username: bob\n", out)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	mustExecute(t, app, "register", "--id", "7", "--username", "ada", "--password", "secret")

	token := login(t, app, "ada", "secret")
	claims, err := app.tokens.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)

	_, err = execute(t, app, "login", "--username", "ada", "--password", "wrong")
	assert.ErrorIs(t, err, service.ErrAuthFailed)
}

func TestGroupCreateReportsSkippedMembers(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	mustExecute(t, app, "register", "--id", "1", "--username", "ada", "--password", "pw")
	mustExecute(t, app, "register", "--id", "2", "--username", "bob", "--password", "pw")

	out := mustExecute(t, app, "group", "create", "Math", "--description", "numbers", "--members", "1,99,1,2")
	assert.Equal(t,
		"User with ID 99 not found.\nUser with ID 1 is already added.\nStudy group created: Math (2 members)\n",
		out)

	out = mustExecute(t, app, "group", "list")
	assert.Equal(t, "Study Groups:\n1. Math\n", out)

	out = mustExecute(t, app, "group", "show", "Math")
	assert.Equal(t, "Group Name: Math\nGroup Description: numbers\nGroup Members:\n- ada\n- bob\n", out)

	_, err := execute(t, app, "group", "show", "math")
	assert.ErrorIs(t, err, store.ErrGroupNotFound)
}

func TestGroupScopedCommandsRequireLogin(t *testing.T) {
	app := newTestApp(t, t.TempDir())

	_, err := execute(t, app, "session", "list")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = execute(t, app, "session", "list", "--token", "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGroupScopedCommandsRequireGroup(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	mustExecute(t, app, "register", "--id", "1", "--username", "ada", "--password", "pw")
	token := login(t, app, "ada", "pw")

	for _, args := range [][]string{
		{"session", "list"},
		{"resource", "add", "Notes"},
		{"discussion", "add", "Exam"},
	} {
		_, err := execute(t, app, append(args, "--token", token)...)
		assert.ErrorIs(t, err, service.ErrNoGroup, "%v", args)
	}
}

func TestSessionsResourcesAndDiscussions(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp(t, dir)
	mustExecute(t, app, "register", "--id", "1", "--username", "ada", "--password", "pw")
	mustExecute(t, app, "group", "create", "Math", "--members", "1")
	token := login(t, app, "ada", "pw")

	out := mustExecute(t, app, "session", "list", "--token", token)
	assert.Equal(t, "Sessions for group Math:\nYour group doesn't have any session.\n", out)

	mustExecute(t, app, "session", "add", "Algebra", "--date", "Monday", "--description", "rings", "--token", token)
	mustExecute(t, app, "session", "edit", "algebra", "--date", "Tuesday", "--token", token)
	out = mustExecute(t, app, "session", "show", "ALGEBRA", "--token", token)
	assert.Equal(t, "Title: Algebra\nDate: Tuesday\nDescription: rings\n", out)

	mustExecute(t, app, "resource", "add", "Notes", "--link", "https://notes", "--token", token)
	mustExecute(t, app, "resource", "edit", "notes", "--title", "Lecture notes", "--token", token)
	out = mustExecute(t, app, "resource", "list", "--token", token)
	assert.Equal(t, "Resources for group Math:\nTitle: Lecture notes\n", out)

	mustExecute(t, app, "discussion", "add", "Exam", "--token", token)
	mustExecute(t, app, "discussion", "comment", "exam", "see", "you", "there", "--token", token)
	mustExecute(t, app, "discussion", "rename", "Exam", "Final exam", "--token", token)

	// A fresh process over the same data directory sees everything.
	reopened := newTestApp(t, dir)
	out = mustExecute(t, reopened, "discussion", "list", "--token", token)
	assert.Equal(t, "Discussions for group Math:\nTopic: Final exam\nComments:\n- ada : see you there\n", out)

	out = mustExecute(t, reopened, "status")
	assert.Contains(t, out, "sessions: loaded 1")
	assert.Contains(t, out, "discussions: loaded 1")
}

func TestProfileUpdate(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	mustExecute(t, app, "register", "--id", "1", "--username", "ada", "--password", "pw", "--name", "Ada")
	token := login(t, app, "ada", "pw")

	out := mustExecute(t, app, "profile", "--surname", "Lovelace", "--password", "new", "--token", token)
	assert.Equal(t, "Profile updated: Ada Lovelace\n", out)

	login(t, app, "ada", "new")
	_, err := execute(t, app, "login", "--username", "ada", "--password", "pw")
	assert.ErrorIs(t, err, service.ErrAuthFailed)
}

func TestStatusOnEmptyDirectory(t *testing.T) {
	app := newTestApp(t, t.TempDir())

	out := mustExecute(t, app, "status")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Contains(t, line, "does not exist")
	}
}

func TestStatusRepairRewritesCorruptCollections(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filestore.SessionsFile), []byte("not gob"), 0o600))

	app := newTestApp(t, dir)
	out := mustExecute(t, app, "status", "--repair")
	assert.Contains(t, out, "sessions: invalid data format")
	assert.Contains(t, out, "Rewrote 5 collections")

	reopened := newTestApp(t, dir)
	out = mustExecute(t, reopened, "status")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.Contains(t, line, "loaded 0")
	}
}
