package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/events"
	"github.com/phrazzld/study-coordinator/internal/service/auth"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	ID       int
	Username string
	Password string
	Name     string
	Surname  string
}

// ProfileUpdate carries the account fields to change. Nil fields are kept.
type ProfileUpdate struct {
	Name     *string
	Surname  *string
	Password *string
}

// AccountService provides registration, login and account lookups.
type AccountService interface {
	// Register adds a new user. It fails with store.ErrDuplicateID or
	// store.ErrDuplicateUsername without changing the collection when the
	// id or username is taken.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Login returns the user with the given credentials, or ErrAuthFailed.
	Login(ctx context.Context, username, password string) (*domain.User, error)

	// FindByID returns the user with the given id, or store.ErrUserNotFound.
	FindByID(ctx context.Context, id int) (*domain.User, error)

	// ListUsers returns all users in registration order.
	ListUsers(ctx context.Context) []*domain.User

	// UpdateProfile changes the user's name, surname or password.
	UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) (*domain.User, error)
}

// accountService implements the AccountService interface
type accountService struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	events   events.EventEmitter
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	emitter events.EventEmitter,
	logger *slog.Logger,
) AccountService {
	return &accountService{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		events:   emitter,
		logger:   logger.With("component", "account_service"),
	}
}

// Register implements AccountService.Register
func (s *accountService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	user, err := domain.NewUser(in.ID, in.Username, in.Password, in.Name, in.Surname)
	if err != nil {
		s.logger.Debug("rejected invalid registration", "error", err, "user_id", in.ID)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if _, err := s.users.FindByID(in.ID); err == nil {
		s.logger.Debug("attempted to register existing id", "user_id", in.ID)
		return nil, fmt.Errorf("failed to register user %d: %w", in.ID, store.ErrDuplicateID)
	}
	if _, err := s.users.FindByUsername(in.Username); err == nil {
		s.logger.Debug("attempted to register existing username", "username", in.Username)
		return nil, fmt.Errorf("failed to register user %q: %w", in.Username, store.ErrDuplicateUsername)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err, "user_id", in.ID)
		return nil, &ServiceError{Service: "account", Op: "register", Err: err}
	}
	user.HashedPassword = hashed
	user.Password = ""

	s.users.Add(user)
	persist(ctx, s.logger, s.users, "users")

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	emit(ctx, s.logger, s.events, events.TypeUserRegistered, events.UserPayload{
		UserID:   user.ID,
		Username: user.Username,
	})

	return user, nil
}

// Login implements AccountService.Login
func (s *accountService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		s.logger.Debug("login failed: unknown username", "username", username)
		return nil, ErrAuthFailed
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, ErrAuthFailed
	}

	s.logger.Debug("user logged in", "user_id", user.ID)
	return user, nil
}

// FindByID implements AccountService.FindByID
func (s *accountService) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	return user, nil
}

// ListUsers implements AccountService.ListUsers
func (s *accountService) ListUsers(ctx context.Context) []*domain.User {
	return s.users.All()
}

// UpdateProfile implements AccountService.UpdateProfile
func (s *accountService) UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) (*domain.User, error) {
	var hashed string
	if upd.Password != nil {
		if *upd.Password == "" {
			return nil, fmt.Errorf("failed to update user %d: %w", id, domain.ErrEmptyPassword)
		}
		h, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err, "user_id", id)
			return nil, &ServiceError{Service: "account", Op: "update_profile", Err: err}
		}
		hashed = h
	}

	user, err := editByKey(
		func() (*domain.User, error) { return s.users.FindByID(id) },
		func(u *domain.User) {
			set(&u.Name, upd.Name)
			set(&u.Surname, upd.Surname)
			if hashed != "" {
				u.HashedPassword = hashed
			}
		},
	)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("rejected profile update", "error", err, "user_id", id)
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	persist(ctx, s.logger, s.users, "users")
	s.logger.Info("user profile updated", "user_id", id)

	return user, nil
}
