package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/takatrack/waste-monitoring/cmd/config"
	"github.com/takatrack/waste-monitoring/constant"
	"github.com/takatrack/waste-monitoring/model"
	userrepo "github.com/takatrack/waste-monitoring/repository/user"
	"github.com/takatrack/waste-monitoring/utils/errors"
	"github.com/takatrack/waste-monitoring/utils/logger"
	"go.uber.org/zap"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Verify(ctx context.Context, req *model.VerifyRequest) (*model.VerifyResponse, error)
	ResolveSession(ctx context.Context, authorizationHeader string) *model.UserEntity
}

type AuthAppImpl struct {
	config   *config.Config
	userRepo userrepo.UserRepository
	tokens   *TokenService
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository) AuthApp {
	return &AuthAppImpl{
		config:   config,
		userRepo: userRepo,
		tokens:   NewTokenService(config.Auth.JWTSecret, config.Auth.JWTExpiration),
	}
}

func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrEmailExists)
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		logger.Error("[Register] err HashPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	loginMethod := "local"
	userEntity := &model.UserEntity{
		OpenID:       "local_" + uuid.NewString(),
		Name:         &req.Name,
		Email:        &req.Email,
		PasswordHash: &hashedPassword,
		LoginMethod:  &loginMethod,
		Role:         constant.RoleCollector,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		// the unique index on email backstops a registration race past the
		// existence check above
		if userrepo.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.tokens.Issue(userEntity)
	if err != nil {
		logger.Error("[Register] err tokens.Issue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		Success: true,
		Token:   token,
		User:    userEntity.PublicProfile(),
	}, nil
}

// Login authenticates by email and password. Unknown email, an account
// without a local password and a wrong password all return the same error so
// responses never reveal whether an email is registered.
func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if !VerifyPassword(req.Password, *user.PasswordHash) {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := s.userRepo.TouchLastSignedIn(ctx, user.ID); err != nil {
		// login still succeeds; the timestamp refresh is best effort
		logger.Warn("[Login] err TouchLastSignedIn", zap.String("error", err.Error()))
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		logger.Error("[Login] err tokens.Issue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		Success: true,
		Token:   token,
		User:    user.PublicProfile(),
	}, nil
}

func (s *AuthAppImpl) Verify(ctx context.Context, req *model.VerifyRequest) (*model.VerifyResponse, error) {
	claims, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}

	return &model.VerifyResponse{
		Valid: true,
		Payload: model.TokenPayload{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		},
	}, nil
}

// ResolveSession turns an Authorization header into the account it belongs
// to. Every failure degrades to an anonymous session (nil): public endpoints
// must keep working without a credential, so nothing on this path is surfaced
// as a request error.
func (s *AuthAppImpl) ResolveSession(ctx context.Context, authorizationHeader string) *model.UserEntity {
	token := ExtractBearer(authorizationHeader)
	if token == "" {
		return nil
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: claims.UserID})
	if err != nil {
		logger.Warn("[ResolveSession] err userRepo.Get", zap.String("error", err.Error()))
		return nil
	}
	return user
}
