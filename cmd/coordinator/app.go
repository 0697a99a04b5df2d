package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/config"
	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/events"
	"github.com/phrazzld/study-coordinator/internal/platform/filestore"
	"github.com/phrazzld/study-coordinator/internal/service"
	"github.com/phrazzld/study-coordinator/internal/service/auth"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// ErrNotLoggedIn is returned by commands that act on behalf of a user when
// no token was supplied.
var ErrNotLoggedIn = errors.New("not logged in: run login and pass the token with --token or COORD_TOKEN")

// ErrNoSigningSecret is returned when a session token has to be issued or
// checked but no JWT secret is configured.
var ErrNoSigningSecret = errors.New("session tokens are disabled: set COORD_AUTH_JWT_SECRET (at least 32 characters)")

// application holds the wired components of the coordinator.
type application struct {
	config *config.Config
	logger *slog.Logger

	stores     *filestore.Stores
	loadReport []store.LoadResult

	emitter     *events.InMemoryEventEmitter
	tokens      auth.JWTService // nil without a configured secret
	accounts    service.AccountService
	groups      service.GroupService
	sessions    service.SessionService
	resources   service.ResourceService
	discussions service.DiscussionService
}

// newApplication opens the data directory, loads every collection and wires
// the services over the loaded stores.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	stores, err := filestore.Open(cfg.Storage.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	report := stores.LoadAll(ctx)
	for _, r := range report {
		logger.Debug("collection loaded",
			"collection", r.Collection,
			"status", r.Status.String(),
			"count", r.Count)
	}

	var tokens auth.JWTService
	if cfg.Auth.JWTSecret != "" {
		tokens, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to create token service: %w", err)
		}
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewActivityLogHandler(logger))

	hasher := auth.NewBcrypt(cfg.Auth.BCryptCost)

	return &application{
		config:      cfg,
		logger:      logger,
		stores:      stores,
		loadReport:  report,
		emitter:     emitter,
		tokens:      tokens,
		accounts:    service.NewAccountService(stores.Users, hasher, hasher, emitter, logger),
		groups:      service.NewGroupService(stores.Groups, stores.Users, emitter, logger),
		sessions:    service.NewSessionService(stores.Sessions, emitter, logger),
		resources:   service.NewResourceService(stores.Resources, emitter, logger),
		discussions: service.NewDiscussionService(stores.Discussions, emitter, logger),
	}, nil
}

// actor resolves the user a token was issued to.
func (a *application) actor(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	tokens, err := a.tokenService()
	if err != nil {
		return nil, err
	}

	claims, err := tokens.ValidateToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	user, err := a.accounts.FindByID(ctx, claims.UserID)
	if err != nil {
		a.logger.Warn("token refers to unknown user", "user_id", claims.UserID)
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	return user, nil
}

// tokenService returns the JWT service, or ErrNoSigningSecret when tokens
// are disabled.
func (a *application) tokenService() (auth.JWTService, error) {
	if a.tokens == nil {
		return nil, ErrNoSigningSecret
	}
	return a.tokens, nil
}
