package identity

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	appcart "github.com/emporium/backend/internal/application/cart"
	"github.com/emporium/backend/internal/domain/cart"
	"github.com/emporium/backend/internal/domain/identity"
	"github.com/emporium/backend/internal/domain/shared"
	"github.com/emporium/backend/internal/infrastructure/auth"
	"github.com/emporium/backend/internal/infrastructure/config"
	"github.com/emporium/backend/internal/infrastructure/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*identity.User
	byEmail map[string]*identity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*identity.User),
		byEmail: make(map[string]*identity.User),
	}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *identity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

type fakeCart struct {
	lines    []cart.Line
	cleared  int
	restored []appcart.RestoredLine
}

func (c *fakeCart) Lines() []cart.Line { return c.lines }
func (c *fakeCart) Clear()             { c.cleared++; c.lines = nil }
func (c *fakeCart) Restore(_ context.Context, lines []appcart.RestoredLine) error {
	c.restored = lines
	return nil
}

type authFixture struct {
	svc   *AuthService
	users *fakeUserRepo
	cart  *fakeCart
	store *session.Store
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
	tokens := auth.NewTokenService(config.JWTConfig{
		Secret:     "test-secret-for-auth-service",
		Expiration: time.Hour,
		Issuer:     "emporium-test",
	})
	users := newFakeUserRepo()
	fc := &fakeCart{}
	return &authFixture{
		svc:   NewAuthService(users, tokens, store, fc, zap.NewNop()),
		users: users,
		cart:  fc,
		store: store,
	}
}

func (f *authFixture) signup(t *testing.T) *AuthResult {
	t.Helper()
	result, err := f.svc.Signup(context.Background(), SignupInput{
		Name:     "Alex Harper",
		Email:    "alex@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return result
}

func TestSignup(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	result := f.signup(t)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, identity.DefaultLoyaltyStatus, result.User.LoyaltyStatus)

	current := f.svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, "alex@example.com", current.Email)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := f.svc.Signup(ctx, SignupInput{
			Name:     "Someone Else",
			Email:    "alex@example.com",
			Password: "other",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	})
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.signup(t)
	require.NoError(t, f.svc.Logout(ctx))

	t.Run("valid credentials", func(t *testing.T) {
		result, err := f.svc.Login(ctx, LoginInput{Email: "alex@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.NotNil(t, f.svc.Current())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.Login(ctx, LoginInput{Email: "alex@example.com", Password: "nope"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("unknown email reports same error", func(t *testing.T) {
		_, err := f.svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "password123"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestLogoutClearsEverything(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t)

	require.NoError(t, f.svc.Logout(context.Background()))

	assert.Nil(t, f.svc.Current())
	assert.Equal(t, 1, f.cart.cleared)

	snap, err := f.store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture(t)
	result := f.signup(t)

	t.Run("matching token", func(t *testing.T) {
		sess, err := f.svc.Authenticate(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, sess.UserID)
	})

	t.Run("foreign token rejected", func(t *testing.T) {
		_, err := f.svc.Authenticate("some-other-token")
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})

	t.Run("signed out rejects all tokens", func(t *testing.T) {
		require.NoError(t, f.svc.Logout(context.Background()))
		_, err := f.svc.Authenticate(result.Token)
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip restores session and cart", func(t *testing.T) {
		f := newAuthFixture(t)
		result := f.signup(t)
		productID := uuid.New()
		f.cart.lines = []cart.Line{{ProductID: productID, Quantity: 2}}
		require.NoError(t, f.svc.Persist())

		// Simulate a restart: fresh service over the same store
		fc := &fakeCart{}
		tokens := auth.NewTokenService(config.JWTConfig{
			Secret:     "test-secret-for-auth-service",
			Expiration: time.Hour,
			Issuer:     "emporium-test",
		})
		restarted := NewAuthService(f.users, tokens, f.store, fc, zap.NewNop())

		require.NoError(t, restarted.Restore(ctx))
		current := restarted.Current()
		require.NotNil(t, current)
		assert.Equal(t, result.User.ID, current.UserID)
		require.Len(t, fc.restored, 1)
		assert.Equal(t, productID, fc.restored[0].ProductID)
		assert.Equal(t, 2, fc.restored[0].Quantity)
	})

	t.Run("no blob means signed out", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.svc.Restore(ctx))
		assert.Nil(t, f.svc.Current())
	})

	t.Run("corrupt blob means signed out", func(t *testing.T) {
		f := newAuthFixture(t)
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))
		f.svc.store = session.NewStore(path, zap.NewNop())

		require.NoError(t, f.svc.Restore(ctx))
		assert.Nil(t, f.svc.Current())
	})

	t.Run("vanished user discards blob", func(t *testing.T) {
		f := newAuthFixture(t)
		f.signup(t)
		require.NoError(t, f.svc.Persist())

		fresh := newAuthFixture(t)
		fresh.svc.store = f.store

		require.NoError(t, fresh.svc.Restore(ctx))
		assert.Nil(t, fresh.svc.Current())

		snap, err := f.store.Load()
		require.NoError(t, err)
		assert.Nil(t, snap)
	})
}

func TestUpdateProfile(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.signup(t)

	t.Run("update addresses", func(t *testing.T) {
		user, err := f.svc.UpdateAddresses(ctx, []identity.Address{
			{Street: "9 Birch Road", City: "Denver", State: "CO", Zip: "80202", Country: "USA"},
		})
		require.NoError(t, err)
		require.Len(t, user.Addresses, 1)
		assert.Equal(t, "Denver", user.Addresses[0].City)
		assert.NotEqual(t, uuid.Nil, user.Addresses[0].ID)
	})

	t.Run("update payment methods", func(t *testing.T) {
		user, err := f.svc.UpdatePaymentMethods(ctx, []identity.PaymentMethod{
			{Type: identity.PaymentCreditCard, Last4: "1881"},
		})
		require.NoError(t, err)
		require.Len(t, user.PaymentMethods, 1)
	})

	t.Run("invalid payment type rejected", func(t *testing.T) {
		_, err := f.svc.UpdatePaymentMethods(ctx, []identity.PaymentMethod{
			{Type: "Barter"},
		})
		assert.Error(t, err)
	})

	t.Run("signed out is unauthorized", func(t *testing.T) {
		require.NoError(t, f.svc.Logout(ctx))
		_, err := f.svc.UpdateAddresses(ctx, nil)
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})
}
