package identity

import (
	"context"
	"errors"
	"sync"
	"time"

	appcart "github.com/emporium/backend/internal/application/cart"
	"github.com/emporium/backend/internal/domain/cart"
	"github.com/emporium/backend/internal/domain/identity"
	"github.com/emporium/backend/internal/domain/shared"
	"github.com/emporium/backend/internal/infrastructure/auth"
	"github.com/emporium/backend/internal/infrastructure/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartAccess is the slice of the cart service the auth service needs:
// snapshotting on persist, clearing on logout, replaying on restore.
type CartAccess interface {
	Lines() []cart.Line
	Clear()
	Restore(ctx context.Context, lines []appcart.RestoredLine) error
}

// Session is the currently signed-in visitor
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResult is returned by login and signup
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *identity.User
}

// SignupInput contains input for account creation
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput contains login credentials
type LoginInput struct {
	Email    string
	Password string
}

// AuthService handles the storefront's single visitor session.
// Credentials are mock: stored plain and compared directly. The session
// and cart are persisted to disk so a restart restores the visitor.
type AuthService struct {
	mu       sync.Mutex
	current  *Session
	userRepo identity.UserRepository
	tokens   *auth.TokenService
	store    *session.Store
	cart     CartAccess
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	tokens *auth.TokenService,
	store *session.Store,
	cartAccess CartAccess,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		store:    store,
		cart:     cartAccess,
		logger:   logger,
	}
}

// Signup creates a new account and signs it in
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	user, err := identity.NewUser(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Account created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)
	return s.startSession(user)
}

// Login authenticates a user and starts a session
// A missing account and a wrong password report the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email", zap.String("email", input.Email))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)
	return s.startSession(user)
}

// Logout ends the session, empties the cart and removes the persisted blob
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	current := s.current
	s.current = nil
	s.mu.Unlock()

	s.cart.Clear()
	if err := s.store.Clear(); err != nil {
		s.logger.Error("Failed to clear persisted session", zap.Error(err))
		return err
	}

	if current != nil {
		s.logger.Info("User logged out", zap.String("user_id", current.UserID.String()))
	}
	return nil
}

// Current returns a copy of the active session, or nil when signed out
func (s *AuthService) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// CurrentUser loads the signed-in user's full profile
func (s *AuthService) CurrentUser(ctx context.Context) (*identity.User, error) {
	current := s.Current()
	if current == nil {
		return nil, shared.ErrUnauthorized
	}
	return s.userRepo.FindByID(ctx, current.UserID)
}

// Authenticate validates a bearer token against the active session
func (s *AuthService) Authenticate(token string) (*Session, error) {
	current := s.Current()
	if current == nil || current.Token != token {
		return nil, shared.ErrUnauthorized
	}
	if _, err := s.tokens.Validate(token); err != nil {
		return nil, shared.ErrUnauthorized
	}
	return current, nil
}

// Restore loads the persisted session blob and re-establishes the session
// and cart. Anything invalid, from a corrupt file to an expired token to a
// vanished user, results in a clean signed-out state rather than an error.
func (s *AuthService) Restore(ctx context.Context) error {
	snap, err := s.store.Load()
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}

	if _, err := s.tokens.Validate(snap.Token); err != nil {
		s.logger.Warn("Discarding persisted session with invalid token", zap.Error(err))
		return s.store.Clear()
	}

	user, err := s.userRepo.FindByID(ctx, snap.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Discarding persisted session for unknown user",
				zap.String("user_id", snap.UserID.String()),
			)
			return s.store.Clear()
		}
		return err
	}

	restored := make([]appcart.RestoredLine, 0, len(snap.Cart))
	for _, line := range snap.Cart {
		restored = append(restored, appcart.RestoredLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	if err := s.cart.Restore(ctx, restored); err != nil {
		return err
	}

	claims, _ := s.tokens.Validate(snap.Token)
	s.mu.Lock()
	s.current = &Session{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     snap.Token,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	s.mu.Unlock()

	s.logger.Info("Session restored",
		zap.String("user_id", user.ID.String()),
		zap.Int("cart_lines", len(snap.Cart)),
	)
	return nil
}

// Persist writes the session and cart to disk. Signed-out visitors have
// nothing to persist.
func (s *AuthService) Persist() error {
	current := s.Current()
	if current == nil {
		return nil
	}

	lines := s.cart.Lines()
	blob := make([]session.CartLineBlob, 0, len(lines))
	for _, line := range lines {
		blob = append(blob, session.CartLineBlob{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return s.store.Save(&session.Snapshot{
		UserID: current.UserID,
		Email:  current.Email,
		Token:  current.Token,
		Cart:   blob,
	})
}

// UpdateAddresses replaces the signed-in user's address book
func (s *AuthService) UpdateAddresses(ctx context.Context, addresses []identity.Address) (*identity.User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	user.SetAddresses(addresses)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePaymentMethods replaces the signed-in user's saved payment methods
func (s *AuthService) UpdatePaymentMethods(ctx context.Context, methods []identity.PaymentMethod) (*identity.User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := user.SetPaymentMethods(methods); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) startSession(user *identity.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate session token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to start session")
	}

	s.mu.Lock()
	s.current = &Session{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	s.mu.Unlock()

	if err := s.Persist(); err != nil {
		s.logger.Error("Failed to persist session", zap.Error(err))
	}

	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
