package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/store"
)

// Default bootstrap account, created when the credential store is empty.
// Operators must change it before production use.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
	DefaultAdminRole     = "ADMIN"
)

// Digest parameters. The salt is fixed so the digest is deterministic and
// stays comparable as a hex string across runs.
const (
	digestSalt       = "inventory-manager/credentials"
	digestIterations = 4096
	digestKeyLen     = 32
)

var (
	// ErrUserExists is returned when creating an account with a taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTooManyAttempts is returned when logins exceed the configured rate.
	ErrTooManyAttempts = errors.New("too many login attempts")
	// ErrNoSession is returned when a token does not belong to an active session.
	ErrNoSession = errors.New("no active session")
)

// Session is the explicit session value returned by Login. Callers thread
// its token through CurrentUser and Logout; there is no process-wide
// current user.
type Session struct {
	Token string
	User  models.User
}

// Options configures a CredentialStore.
type Options struct {
	StorePath     string
	SessionSecret string
	SessionTTL    time.Duration
	LoginRate     rate.Limit
	LoginBurst    int
}

// CredentialStore holds username to credential-record mappings, verifies
// logins, and tracks active sessions. Not safe for concurrent use.
type CredentialStore struct {
	users   map[string]models.User
	active  map[string]struct{}
	limiter *rate.Limiter
	secret  []byte
	ttl     time.Duration
	path    string
	log     *zap.Logger
}

// NewCredentialStore loads the credential snapshot at opts.StorePath, or
// starts empty when the file is missing or unreadable. An empty store is
// bootstrapped with the default admin account.
func NewCredentialStore(opts Options, log *zap.Logger) *CredentialStore {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 15 * time.Minute
	}
	if opts.LoginRate <= 0 {
		opts.LoginRate = rate.Every(time.Second)
	}
	if opts.LoginBurst <= 0 {
		opts.LoginBurst = 5
	}

	c := &CredentialStore{
		users:   map[string]models.User{},
		active:  map[string]struct{}{},
		limiter: rate.NewLimiter(opts.LoginRate, opts.LoginBurst),
		secret:  []byte(opts.SessionSecret),
		ttl:     opts.SessionTTL,
		path:    opts.StorePath,
		log:     log,
	}

	records, err := store.Load[models.User](opts.StorePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("credential store unreadable, starting empty",
			zap.String("path", opts.StorePath), zap.Error(err))
	}
	for _, u := range records {
		c.users[u.Username] = u
	}

	if len(c.users) == 0 {
		if err := c.CreateAccount(DefaultAdminUsername, DefaultAdminPassword, DefaultAdminRole); err != nil {
			log.Error("bootstrapping default admin failed", zap.Error(err))
		}
	}
	return c
}

// HashPassword returns the deterministic hex-encoded PBKDF2-SHA256 digest
// of password.
func HashPassword(password string) string {
	key := pbkdf2.Key([]byte(password), []byte(digestSalt), digestIterations, digestKeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// Login verifies the credentials and opens a session. On mismatch or an
// unknown username no session state changes.
func (c *CredentialStore) Login(username, password string) (Session, error) {
	if !c.limiter.Allow() {
		return Session{}, ErrTooManyAttempts
	}

	user, ok := c.users[username]
	if !ok || user.PasswordHash != HashPassword(password) {
		return Session{}, ErrInvalidCredentials
	}

	token, err := c.mintToken(user)
	if err != nil {
		return Session{}, err
	}
	c.active[token] = struct{}{}
	return Session{Token: token, User: user}, nil
}

// CurrentUser returns the user behind an active session token.
func (c *CredentialStore) CurrentUser(token string) (models.User, error) {
	if _, ok := c.active[token]; !ok {
		return models.User{}, ErrNoSession
	}

	username, err := c.parseToken(token)
	if err != nil {
		delete(c.active, token)
		return models.User{}, ErrNoSession
	}

	user, ok := c.users[username]
	if !ok {
		return models.User{}, ErrNoSession
	}
	return user, nil
}

// IsAuthenticated reports whether token belongs to an active, unexpired
// session.
func (c *CredentialStore) IsAuthenticated(token string) bool {
	_, err := c.CurrentUser(token)
	return err == nil
}

// Logout closes the session behind token. Unknown tokens are ignored.
func (c *CredentialStore) Logout(token string) {
	delete(c.active, token)
}

// CreateAccount stores a new hashed credential and persists the whole
// collection. Taken usernames are rejected with ErrUserExists.
func (c *CredentialStore) CreateAccount(username, password, role string) error {
	if _, ok := c.users[username]; ok {
		return ErrUserExists
	}

	c.users[username] = models.User{
		Username:     username,
		PasswordHash: HashPassword(password),
		Role:         role,
	}
	c.save()
	return nil
}

// save rewrites the credential snapshot, sorted by username so the file is
// stable across runs. Failures are logged and swallowed like the other
// implicit saves.
func (c *CredentialStore) save() {
	records := make([]models.User, 0, len(c.users))
	for _, u := range c.users {
		records = append(records, u)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Username < records[j].Username })

	if err := store.Save(c.path, records); err != nil {
		c.log.Error("saving credential store failed", zap.String("path", c.path), zap.Error(err))
	}
}
