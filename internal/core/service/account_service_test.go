package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
	"github.com/99minutos/user-catalog-api/internal/infrastructure/auth"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestCodec() *auth.JWTCodec {
	return auth.NewJWTCodec("secret", auth.WithClock(func() time.Time { return testNow }))
}

func newTestAccountService(store *memStore) *AccountService {
	return NewAccountService(store, auth.NewBcryptHasher(bcrypt.MinCost), newTestCodec(), 30*time.Minute, zerolog.Nop())
}

func alice() ports.UserInput {
	return ports.UserInput{Name: "Alice", Email: "a@x.com", Role: "user", Password: "secret"}
}

func TestAccountService_Register_Success(t *testing.T) {
	store := newMemStore()
	svc := newTestAccountService(store)

	user, err := svc.Register(context.Background(), alice())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected an id to be assigned")
	}
	if !user.IsActive {
		t.Fatalf("new users must be active")
	}
	if user.HashedPassword == "secret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != "user" || user.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	store := newMemStore()
	svc := newTestAccountService(store)

	if _, err := svc.Register(context.Background(), alice()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	second := alice()
	second.Name = "Alice Two"
	if _, err := svc.Register(context.Background(), second); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	bob := ports.UserInput{Name: "Bob", Email: "b@x.com", Role: "user", Password: "pw"}
	if _, err := svc.Register(context.Background(), bob); err != nil {
		t.Fatalf("different email should register: %v", err)
	}
	if len(store.users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(store.users))
	}
}

func TestAccountService_Register_ConflictAtCommit(t *testing.T) {
	store := newMemStore()
	store.commitErr = errors.Join(domain.ErrDuplicateUser, errors.New("duplicate key value violates unique constraint"))
	svc := newTestAccountService(store)

	_, err := svc.Register(context.Background(), alice())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected a conflict, got %v", err)
	}
	if len(store.users) != 0 {
		t.Fatalf("failed session must not leave a user behind")
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	store := newMemStore()
	svc := newTestAccountService(store)
	if _, err := svc.Register(context.Background(), alice()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "a@x.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := newTestCodec().Decode(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != "a@x.com" {
		t.Fatalf("expected subject a@x.com, got %q", claims.Subject)
	}
	if !claims.ExpiresAt.Equal(testNow.Add(30 * time.Minute)) {
		t.Fatalf("expected configured ttl, got %v", claims.ExpiresAt.Sub(testNow))
	}
}

func TestAccountService_Login_FailuresAreIndistinguishable(t *testing.T) {
	store := newMemStore()
	svc := newTestAccountService(store)
	if _, err := svc.Register(context.Background(), alice()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPassword := svc.Login(context.Background(), "a@x.com", "nope")
	_, _, unknownEmail := svc.Login(context.Background(), "ghost@x.com", "secret")

	if wrongPassword != domain.ErrWrongCredentials || unknownEmail != domain.ErrWrongCredentials {
		t.Fatalf("expected ErrWrongCredentials twice, got %v and %v", wrongPassword, unknownEmail)
	}
	if !errors.Is(wrongPassword, domain.ErrUnauthenticated) {
		t.Fatalf("wrong credentials must be unauthenticated")
	}
}

func TestAccountService_Login_MalformedStoredHash(t *testing.T) {
	store := newMemStore()
	store.users[1] = &domain.User{ID: 1, Email: "a@x.com", HashedPassword: "corrupt", IsActive: true}
	store.nextUser = 1
	svc := newTestAccountService(store)

	if _, _, err := svc.Login(context.Background(), "a@x.com", "secret"); err != domain.ErrWrongCredentials {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
}

func TestAccountService_Login_Inactive(t *testing.T) {
	store := newMemStore()
	svc := newTestAccountService(store)
	user, err := svc.Register(context.Background(), alice())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	store.users[user.ID].IsActive = false

	_, _, err = svc.Login(context.Background(), "a@x.com", "secret")
	if err != domain.ErrInactiveLogin {
		t.Fatalf("expected ErrInactiveLogin, got %v", err)
	}
	if !errors.Is(err, domain.ErrUnauthenticated) || domain.Message(err) != "inactive user" {
		t.Fatalf("inactive login must be unauthenticated with its own message, got %q", domain.Message(err))
	}
}
