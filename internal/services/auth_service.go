package services

import (
	"errors"
	"fmt"
	"time"

	"restaurant_orders/internal/models"
	"restaurant_orders/internal/redis"
	"restaurant_orders/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

// SessionStore holds bearer-token sessions. Satisfied by redis.Client.
type SessionStore interface {
	SetAuthSession(session *redis.AuthSession, ttl time.Duration) error
	GetAuthSession(token string) (*redis.AuthSession, error)
	DeleteAuthSession(token string) error
}

type AuthService interface {
	Register(username, email, phone, password string) (*models.User, error)
	Login(username, password string) (*models.User, string, error)
	Logout(token string) error
	GetUserByToken(token string) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions, sessionTTL: sessionTTL}
}

func (s *authService) Register(username, email, phone, password string) (*models.User, error) {
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hashedPassword),
		Role:         string(models.RoleCustomer),
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *authService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	session := &redis.AuthSession{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetAuthSession(session, s.sessionTTL); err != nil {
		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	return user, token, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteAuthSession(token)
}

func (s *authService) GetUserByToken(token string) (*models.User, error) {
	session, err := s.sessions.GetAuthSession(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return user, nil
}
