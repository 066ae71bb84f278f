package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/leave-service/internal/auth"
	"github.com/spec-kit/leave-service/internal/config"
	"github.com/spec-kit/leave-service/internal/domain"
	"github.com/spec-kit/leave-service/internal/events"
	"github.com/spec-kit/leave-service/internal/repository"
	apperrors "github.com/spec-kit/leave-service/pkg/util"
)

// AuthService coordinates signup, login and logout flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	revoked    *auth.RevocationList
	dispatcher events.Dispatcher
	bcryptCost int
	leaveCfg   config.LeaveConfig
	seedCfg    config.AdminSeedConfig
	logger     *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Revoked    *auth.RevocationList
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		revoked:    deps.Revoked,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		leaveCfg:   cfg.Leave,
		seedCfg:    cfg.AdminSeed,
		logger:     deps.Logger,
	}
}

// invalidCredentials is shared by the unknown-email and wrong-password
// paths so the response never leaks account existence.
func invalidCredentials() error {
	return apperrors.NewDomainError("INVALID_CREDENTIALS", "invalid credentials", http.StatusBadRequest, nil)
}

// NormalizeEmail lower-cases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a new EMPLOYEE account with default leave balances.
// Role promotion never happens through this path.
func (s *AuthService) Signup(ctx context.Context, name, email, department string, joiningDate time.Time, password string) (*domain.User, error) {
	email = NormalizeEmail(email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("email already registered", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		Department:   strings.TrimSpace(department),
		JoiningDate:  domain.TruncateToDate(joiningDate),
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		Balances: map[domain.LeaveType]int{
			domain.LeaveTypeAnnual: s.leaveCfg.DefaultAnnualDays,
			domain.LeaveTypeSick:   s.leaveCfg.DefaultSickDays,
			domain.LeaveTypeCasual: s.leaveCfg.DefaultCasualDays,
		},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventUserRegistered,
		ActorID:   user.ID,
		Timestamp: time.Now(),
		Payload: events.UserRegisteredPayload{
			UserID:     user.ID,
			Email:      user.Email,
			Department: user.Department,
		},
	})
	return user, nil
}

// Login authenticates an email/password pair and mints a session token.
// With adminOnly set, non-admin accounts are refused instead of being
// issued a downgraded token.
func (s *AuthService) Login(ctx context.Context, email, password string, adminOnly bool) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, invalidCredentials()
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, invalidCredentials()
	}
	if adminOnly && user.Role != domain.RoleAdmin {
		return "", time.Time{}, apperrors.NewForbidden("access denied")
	}
	return s.tokenMgr.GenerateToken(user.ID, user.Role)
}

// Logout revokes the presented token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *domain.IdentityClaims) error {
	return s.revoked.Revoke(ctx, claims.TokenID, claims.ExpiresAt)
}

// SeedAdmin provisions the configured administrator account if absent.
// This replaces the original in-band signup promotion.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	if s.seedCfg.Email == "" || s.seedCfg.Password == "" {
		return nil
	}
	email := NormalizeEmail(s.seedCfg.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if err != pgx.ErrNoRows {
		return err
	}

	hash, err := auth.HashPassword(s.seedCfg.Password, s.bcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.User{
		Name:         s.seedCfg.Name,
		Email:        email,
		Department:   "Administration",
		JoiningDate:  domain.TruncateToDate(time.Now()),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Balances:     map[domain.LeaveType]int{},
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("seeded admin account", zap.String("email", admin.Email))
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
