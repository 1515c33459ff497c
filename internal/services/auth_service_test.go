package services

import (
	"errors"
	"testing"
	"time"

	"restaurant_orders/internal/models"
	"restaurant_orders/internal/redis"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  []models.User
	nextID uint
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error { return nil }

func (f *fakeUserRepo) Delete(id uint) error { return nil }

type fakeSessionStore struct {
	sessions map[string]*redis.AuthSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*redis.AuthSession)}
}

func (f *fakeSessionStore) SetAuthSession(session *redis.AuthSession, ttl time.Duration) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionStore) GetAuthSession(token string) (*redis.AuthSession, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (f *fakeSessionStore) DeleteAuthSession(token string) error {
	delete(f.sessions, token)
	return nil
}

func TestAuthService(t *testing.T) {
	t.Run("register then login", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{}, newFakeSessionStore(), time.Hour)

		user, err := svc.Register("ada", "ada@example.com", "555-0100", "hunter2!")
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}
		if user.PasswordHash == "hunter2!" {
			t.Fatal("password stored in plain text")
		}

		logged, token, err := svc.Login("ada", "hunter2!")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if token == "" || logged.ID != user.ID {
			t.Fatalf("unexpected login result: token=%q user=%+v", token, logged)
		}

		current, err := svc.GetUserByToken(token)
		if err != nil {
			t.Fatalf("token lookup failed: %v", err)
		}
		if current.Username != "ada" {
			t.Fatalf("unexpected user: %+v", current)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{}, newFakeSessionStore(), time.Hour)
		if _, err := svc.Register("ada", "ada@example.com", "", "pw"); err != nil {
			t.Fatalf("register failed: %v", err)
		}
		if _, err := svc.Register("ada", "other@example.com", "", "pw"); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
		if _, err := svc.Register("eve", "ada@example.com", "", "pw"); !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{}, newFakeSessionStore(), time.Hour)
		svc.Register("ada", "ada@example.com", "", "correct")
		if _, _, err := svc.Login("ada", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, _, err := svc.Login("nobody", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("logout invalidates token", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{}, newFakeSessionStore(), time.Hour)
		svc.Register("ada", "ada@example.com", "", "pw")
		_, token, err := svc.Login("ada", "pw")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if err := svc.Logout(token); err != nil {
			t.Fatalf("logout failed: %v", err)
		}
		if _, err := svc.GetUserByToken(token); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}
