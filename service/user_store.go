package service

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jupiarasanches/gestao-processos3/config"
	"github.com/jupiarasanches/gestao-processos3/model"
	"github.com/patrickmn/go-cache"
)

var (
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when no account matches the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidResetToken is returned for unknown or expired reset tokens.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// UserStore is the mock account table. Seed users come from the config file;
// registered users live only for the process lifetime. Reset tokens expire
// on their own via the TTL cache.
type UserStore struct {
	mu          sync.RWMutex
	users       []*model.User
	resetTokens *cache.Cache
}

// NewUserStore seeds the table from config. Seed users get sequential ids so
// the demo accounts keep stable identities.
func NewUserStore(seed []config.User, resetTTL time.Duration) *UserStore {
	s := &UserStore{
		resetTokens: cache.New(resetTTL, 2*resetTTL),
	}
	now := time.Now()
	for i, u := range seed {
		role := u.Role
		if role == "" {
			role = model.RoleCommon
		}
		s.users = append(s.users, &model.User{
			ID:        strconv.Itoa(i + 1),
			Name:      u.Name,
			Email:     u.Email,
			Password:  u.Password,
			Role:      role,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
			UpdatedAt: now.Add(time.Duration(i) * time.Second),
		})
	}
	return s
}

// Authenticate checks email and password against the table.
func (s *UserStore) Authenticate(email, password string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.find(email)
	if u == nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	cp := *u
	return &cp, nil
}

// Register creates a new account with the common role.
func (s *UserStore) Register(name, email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(email) != nil {
		return nil, ErrEmailTaken
	}

	now := time.Now()
	u := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      model.RoleCommon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users = append(s.users, u)

	cp := *u
	return &cp, nil
}

// FindByEmail returns a copy of the account, or nil.
func (s *UserStore) FindByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.find(email); u != nil {
		cp := *u
		return &cp
	}
	return nil
}

// CreateResetToken issues a single-use TTL token for the account.
func (s *UserStore) CreateResetToken(email string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.find(email) == nil {
		return "", ErrUserNotFound
	}
	token := uuid.NewString()
	s.resetTokens.Set(token, email, cache.DefaultExpiration)
	return token, nil
}

// ResetPassword consumes the token and sets the new password.
func (s *UserStore) ResetPassword(token, newPassword string) error {
	v, ok := s.resetTokens.Get(token)
	if !ok {
		return ErrInvalidResetToken
	}
	s.resetTokens.Delete(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.find(v.(string))
	if u == nil {
		return ErrUserNotFound
	}
	u.Password = newPassword
	u.UpdatedAt = time.Now()
	return nil
}

// find must be called with a lock held.
func (s *UserStore) find(email string) *model.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}
