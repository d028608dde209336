package service

import (
	"context"
	"testing"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/repository"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Mock repository for testing
type mockUserRepository struct {
	users  map[string]*domain.User
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	if _, exists := m.users[username]; exists {
		return nil, repository.ErrUserAlreadyExists
	}
	m.nextID++
	user := &domain.User{ID: m.nextID, Username: username, Password: passwordHash}
	m.users[username] = user
	return user, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, exists := m.users[username]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func TestProperty_RegistrationCreatesHashedPasswords(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("passwords are hashed with bcrypt and not stored as plaintext", prop.ForAll(
		func(username string, password string) bool {
			userRepo := newMockUserRepository()
			service := NewAuthService(userRepo, NewBcryptHasher(), "test-secret", 0)
			ctx := context.Background()

			user, err := service.Register(ctx, username, password)
			if err != nil {
				return true // Skip if registration fails
			}

			if user.Password == password {
				t.Logf("FAIL: Password stored as plaintext for user %s", username)
				return false
			}

			if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
				t.Logf("FAIL: Password hash is not a valid bcrypt hash or doesn't match: %v", err)
				return false
			}

			stored, err := userRepo.FindByUsername(ctx, username)
			if err != nil {
				t.Logf("FAIL: Could not find stored user: %v", err)
				return false
			}

			return stored.Password == user.Password && stored.Password != password
		},
		gen.RegexMatch(`[a-z]{3,20}`),
		gen.RegexMatch(`[A-Za-z0-9!@#$%]{8,20}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_LoginRoundTripTokenCarriesIdentity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("register then login yields a token whose subject matches the user", prop.ForAll(
		func(username string, password string) bool {
			userRepo := newMockUserRepository()
			service := NewAuthService(userRepo, NewBcryptHasher(), "test-secret-key", 0)
			ctx := context.Background()

			user, err := service.Register(ctx, username, password)
			if err != nil {
				return true // Skip if registration fails
			}

			token, err := service.Login(ctx, username, password)
			if err != nil {
				t.Logf("FAIL: Login failed: %v", err)
				return false
			}

			claims, err := service.ValidateToken(token)
			if err != nil {
				t.Logf("FAIL: Token validation failed: %v", err)
				return false
			}

			if claims.UserID != user.ID {
				t.Logf("FAIL: User ID claim mismatch. Expected %d, got %d", user.ID, claims.UserID)
				return false
			}

			if claims.Username != username {
				t.Logf("FAIL: Username claim mismatch. Expected %s, got %s", username, claims.Username)
				return false
			}

			if claims.IssuedAt == nil {
				t.Logf("FAIL: Token missing issued at claim")
				return false
			}

			// With expiry disabled the token must carry no exp claim
			if claims.ExpiresAt != nil {
				t.Logf("FAIL: Token carries an expiration despite expiry being disabled")
				return false
			}

			return true
		},
		gen.RegexMatch(`[a-z]{3,20}`),
		gen.RegexMatch(`[A-Za-z0-9!@#$%]{8,20}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestLoginUnknownUser(t *testing.T) {
	service := NewAuthService(newMockUserRepository(), NewBcryptHasher(), "test-secret", 0)

	_, err := service.Login(context.Background(), "ghost", "whatever")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := newMockUserRepository()
	service := NewAuthService(userRepo, NewBcryptHasher(), "test-secret", 0)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = service.Login(ctx, "alice", "pw2")
	require.ErrorIs(t, err, ErrInvalidPassword)
}

func TestDuplicateRegistrationFails(t *testing.T) {
	userRepo := newMockUserRepository()
	service := NewAuthService(userRepo, NewBcryptHasher(), "test-secret", 0)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = service.Register(ctx, "alice", "pw1")
	require.ErrorIs(t, err, repository.ErrUserAlreadyExists)
}

func TestConfiguredExpiryIsApplied(t *testing.T) {
	userRepo := newMockUserRepository()
	service := NewAuthService(userRepo, NewBcryptHasher(), "test-secret", 15*time.Minute)
	ctx := context.Background()

	_, err := service.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	token, err := service.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	userRepo := newMockUserRepository()
	issuer := NewAuthService(userRepo, NewBcryptHasher(), "secret-a", 0)
	verifier := NewAuthService(userRepo, NewBcryptHasher(), "secret-b", 0)
	ctx := context.Background()

	_, err := issuer.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	token, err := issuer.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestPasswordHasherCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", hash)

	require.True(t, hasher.Check("pw1", hash))
	require.False(t, hasher.Check("pw2", hash))
	require.False(t, hasher.Check("pw1", "not-a-hash"))
}
