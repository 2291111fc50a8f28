package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporin/internal/domain/entity"
	"laporin/pkg/errors"
)

type fakeAuthClient struct {
	uidSeq       int
	uidsByEmail  map[string]string
	passwords    map[string]string
	failSignIn   bool
	resetEmails  []string
	failReset    bool
	failVerify   bool
	failCreation bool
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		uidsByEmail: make(map[string]string),
		passwords:   make(map[string]string),
	}
}

func (c *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if c.failCreation {
		return "", fmt.Errorf("identity provider unavailable")
	}
	c.uidSeq++
	uid := fmt.Sprintf("uid-%d", c.uidSeq)
	c.uidsByEmail[email] = uid
	c.passwords[email] = password
	return uid, nil
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	if c.failVerify {
		return "", fmt.Errorf("invalid token")
	}
	// Tokens are "token-for-<uid>".
	return token[len("token-for-"):], nil
}

func (c *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	uid, ok := c.uidsByEmail[email]
	if c.failSignIn || !ok || c.passwords[email] != password {
		return "", fmt.Errorf("invalid credentials")
	}
	return "token-for-" + uid, nil
}

func (c *fakeAuthClient) SendPasswordReset(ctx context.Context, email string) error {
	if c.failReset {
		return fmt.Errorf("identity provider unavailable")
	}
	c.resetEmails = append(c.resetEmails, email)
	return nil
}

func newAuthTestEnv() (*fakeUserRepo, *fakeAuthClient, *AuthUseCase) {
	users := newFakeUserRepo()
	auth := newFakeAuthClient()
	return users, auth, NewAuthUseCase(users, auth)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	users, _, uc := newAuthTestEnv()

	result, err := uc.Register(ctx, RegisterInput{
		Email:    "rina@example.com",
		Password: "secret123",
		Name:     "Rina",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, entity.RoleUser, result.User.Role)
	assert.Equal(t, "rina@example.com", result.User.Email)
	assert.False(t, result.User.CreatedAt.IsZero())

	stored, err := users.GetByID(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, stored.Role)
}

func TestRegisterWithRole(t *testing.T) {
	ctx := context.Background()
	_, _, uc := newAuthTestEnv()

	result, err := uc.Register(ctx, RegisterInput{
		Email:      "budi@example.com",
		Password:   "secret123",
		Name:       "Budi",
		Role:       entity.RoleTechnician,
		Department: "dept-electrical",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTechnician, result.User.Role)
	assert.Equal(t, "dept-electrical", result.User.Department)

	_, err = uc.Register(ctx, RegisterInput{
		Email:    "x@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	_, _, uc := newAuthTestEnv()

	_, err := uc.Register(ctx, RegisterInput{Email: "rina@example.com", Password: "secret123", Name: "Rina"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, RegisterInput{Email: "rina@example.com", Password: "other", Name: "Impostor"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	_, _, uc := newAuthTestEnv()

	registered, err := uc.Register(ctx, RegisterInput{Email: "rina@example.com", Password: "secret123", Name: "Rina"})
	require.NoError(t, err)

	result, err := uc.Login(ctx, "rina@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)

	_, err = uc.Login(ctx, "rina@example.com", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginWithoutProfile(t *testing.T) {
	ctx := context.Background()
	_, auth, uc := newAuthTestEnv()

	// Credential exists in the identity provider but no profile record does.
	_, err := auth.CreateUser(ctx, "ghost@example.com", "secret123", "Ghost")
	require.NoError(t, err)

	_, err = uc.Login(ctx, "ghost@example.com", "secret123")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendPasswordReset(t *testing.T) {
	ctx := context.Background()
	_, auth, uc := newAuthTestEnv()

	require.NoError(t, uc.SendPasswordReset(ctx, "rina@example.com"))
	assert.Equal(t, []string{"rina@example.com"}, auth.resetEmails)

	auth.failReset = true
	err := uc.SendPasswordReset(ctx, "rina@example.com")
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}
