package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/store"
)

func newStore(t *testing.T) (*CredentialStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	c := NewCredentialStore(Options{
		StorePath:     path,
		SessionSecret: "test-secret",
		SessionTTL:    time.Minute,
	}, zap.NewNop())
	return c, path
}

func TestBootstrapCreatesSingleDefaultAdmin(t *testing.T) {
	_, path := newStore(t)

	records, err := store.Load[models.User](path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, DefaultAdminUsername, records[0].Username)
	assert.Equal(t, DefaultAdminRole, records[0].Role)
	assert.Equal(t, HashPassword(DefaultAdminPassword), records[0].PasswordHash)
}

func TestLoginDefaultAdmin(t *testing.T) {
	c, _ := newStore(t)

	session, err := c.Login(DefaultAdminUsername, DefaultAdminPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, DefaultAdminUsername, session.User.Username)
	assert.Equal(t, DefaultAdminRole, session.User.Role)
}

func TestLoginFailures(t *testing.T) {
	c, _ := newStore(t)

	_, err := c.Login(DefaultAdminUsername, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = c.Login("nobody", DefaultAdminPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionLifecycle(t *testing.T) {
	c, _ := newStore(t)

	session, err := c.Login(DefaultAdminUsername, DefaultAdminPassword)
	require.NoError(t, err)

	user, err := c.CurrentUser(session.Token)
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminUsername, user.Username)
	assert.True(t, c.IsAuthenticated(session.Token))

	c.Logout(session.Token)
	_, err = c.CurrentUser(session.Token)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, c.IsAuthenticated(session.Token))
}

func TestCurrentUserRejectsForeignToken(t *testing.T) {
	c, _ := newStore(t)

	_, err := c.CurrentUser("not-a-session-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCreateAccount(t *testing.T) {
	c, path := newStore(t)

	require.NoError(t, c.CreateAccount("alice", "s3cret", "USER"))

	session, err := c.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "USER", session.User.Role)

	// Duplicate usernames are rejected without state changes.
	err = c.CreateAccount("alice", "other", "ADMIN")
	assert.ErrorIs(t, err, ErrUserExists)

	records, err := store.Load[models.User](path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCredentialsSurviveReload(t *testing.T) {
	c, path := newStore(t)
	require.NoError(t, c.CreateAccount("bob", "hunter2", "USER"))

	reloaded := NewCredentialStore(Options{
		StorePath:     path,
		SessionSecret: "test-secret",
		SessionTTL:    time.Minute,
	}, zap.NewNop())

	_, err := reloaded.Login("bob", "hunter2")
	require.NoError(t, err)

	// The bootstrap must not run again on a non-empty store.
	records, err := store.Load[models.User](path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoginRateLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	c := NewCredentialStore(Options{
		StorePath:     path,
		SessionSecret: "test-secret",
		SessionTTL:    time.Minute,
		LoginRate:     rate.Every(time.Hour),
		LoginBurst:    2,
	}, zap.NewNop())

	for range 2 {
		_, err := c.Login(DefaultAdminUsername, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := c.Login(DefaultAdminUsername, DefaultAdminPassword)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestHashPasswordDeterministicHex(t *testing.T) {
	first := HashPassword("swordfish")
	second := HashPassword("swordfish")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // 32 bytes, hex-encoded
	assert.NotEqual(t, first, HashPassword("Swordfish"))
}
