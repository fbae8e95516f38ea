package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-api/internal/domain/entity"
	repo "github.com/oksasatya/go-user-api/internal/domain/repository"
	"github.com/oksasatya/go-user-api/internal/infrastructure/events"
	"github.com/oksasatya/go-user-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserInactive       = errors.New("user inactive or deleted")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
)

// TokenCache short-circuits token key lookups. Implementations may be lossy.
type TokenCache interface {
	Get(ctx context.Context, key string) (userID string, ok bool, err error)
	Set(ctx context.Context, key, userID string) error
}

// EventPublisher announces user lifecycle changes.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, userID, email string) error
}

type Service struct {
	Repo   repo.UserRepository
	Tokens repo.TokenRepository
	Cache  TokenCache
	Events EventPublisher
	Logger *logrus.Logger
}

// NewService wires the user service. cache and events may be nil.
func NewService(users repo.UserRepository, tokens repo.TokenRepository, cache TokenCache, events EventPublisher, logger *logrus.Logger) *Service {
	return &Service{
		Repo:   users,
		Tokens: tokens,
		Cache:  cache,
		Events: events,
		Logger: logger,
	}
}

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u, err := entity.NewUser(in.Email, in.Password, entity.WithName(in.Name))
	if err != nil {
		return nil, err
	}
	return s.persistNew(ctx, u)
}

func (s *Service) CreateSuperuser(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := entity.NewSuperuser(email, password)
	if err != nil {
		return nil, err
	}
	return s.persistNew(ctx, u)
}

func (s *Service) persistNew(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		helpers.LogError(s.Logger, "create user failed", err, logrus.Fields{"email": u.Email})
		return nil, err
	}
	s.publish(ctx, events.UserCreated, u)
	return u, nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnPasswordCheck runs one bcrypt comparison so unknown emails cost about
// as much as wrong passwords.
func burnPasswordCheck(plain string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = helpers.HashPassword("unusable-password")
	})
	_ = helpers.CompareHashAndPassword(dummyHash, plain)
}

// CheckCredentials validates email/password and returns the active user.
func (s *Service) CheckCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			helpers.LogError(s.Logger, "credential lookup failed", err, nil)
			return nil, err
		}
		burnPasswordCheck(password)
		return nil, ErrInvalidCredentials
	}
	if !u.CheckPassword(password) || !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken returns the caller's existing token or creates the first one.
func (s *Service) IssueToken(ctx context.Context, email, password string) (*entity.AuthToken, error) {
	u, err := s.CheckCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	key, err := helpers.GenTokenKey()
	if err != nil {
		return nil, fmt.Errorf("generate token key: %w", err)
	}
	t, err := s.Tokens.GetOrCreate(ctx, u.ID, key)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return nil, err
	}
	return t, nil
}

// Authenticate resolves a presented token key to its active owner.
func (s *Service) Authenticate(ctx context.Context, key string) (*entity.User, error) {
	if key == "" {
		return nil, ErrInvalidToken
	}
	userID, err := s.userIDForToken(ctx, key)
	if err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserInactive
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}
	return u, nil
}

func (s *Service) userIDForToken(ctx context.Context, key string) (string, error) {
	if s.Cache != nil {
		uid, ok, err := s.Cache.Get(ctx, key)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("token cache read failed")
		}
		if ok {
			return uid, nil
		}
	}
	t, err := s.Tokens.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, t.UserID); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("token cache write failed")
		}
	}
	return t.UserID, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfileInput carries a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	Name     *string
	Password *string
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Password != nil {
		if err := u.SetPassword(*in.Password); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		helpers.LogError(s.Logger, "update profile failed", err, logrus.Fields{"user_id": u.ID})
		return nil, err
	}
	s.publish(ctx, events.UserUpdated, u)
	return u, nil
}

func (s *Service) publish(ctx context.Context, eventType string, u *entity.User) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, eventType, u.ID, u.Email); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": u.ID, "event": eventType}).Warn("publish user event failed")
	}
}
