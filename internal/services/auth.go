package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/repositories"
	"service-hub/pkg/config"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/service"
	"service-hub/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context, refreshToken string) error
	GetAuthUser(ctx context.Context, userID uint64) (*dto.AuthUserDTO, error)
}

type AuthService struct {
	userRepo    repositories.UserRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	roleService AuthRoleServiceInterface
	jwtService  service.JWTService
	logger      *zap.Logger
	authConfig  config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	roleService AuthRoleServiceInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
	authConfig config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		cacheRepo:   cacheRepo,
		roleService: roleService,
		jwtService:  jwtService,
		logger:      logger,
		authConfig:  authConfig,
	}
}

func loginAttemptsKey(login string) string {
	return fmt.Sprintf("auth:attempts:login:%s", login)
}

func refreshTokenKey(userID uint64, jti string) string {
	return fmt.Sprintf("auth:refresh:user:%d:%s", userID, jti)
}

// Login проверяет учётные данные и выдаёт пару токенов. Неудачные
// попытки считаются в Redis; после превышения лимита вход блокируется
// на время LockoutDuration.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	attemptsKey := loginAttemptsKey(payload.Login)
	if cached, err := s.cacheRepo.Get(ctx, attemptsKey); err == nil {
		var attempts int
		if _, errScan := fmt.Sscanf(cached, "%d", &attempts); errScan == nil && attempts >= s.authConfig.MaxLoginAttempts {
			s.logger.Warn("AuthService: Вход заблокирован из-за превышения числа попыток",
				zap.String("login", payload.Login))
			return nil, apperrors.NewHttpError(429,
				"слишком много неудачных попыток входа, попробуйте позже", apperrors.ErrForbidden, nil)
		}
	}

	user, err := s.userRepo.FindUserByLogin(ctx, payload.Login)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.registerFailedAttempt(ctx, attemptsKey)
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error("AuthService: Ошибка поиска пользователя при входе", zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPassword(user.PasswordHash, payload.Password) {
		s.registerFailedAttempt(ctx, attemptsKey)
		return nil, apperrors.ErrInvalidCredentials
	}

	// Успешный вход сбрасывает счётчик попыток.
	if err := s.cacheRepo.Del(ctx, attemptsKey); err != nil {
		s.logger.Warn("AuthService: Не удалось сбросить счётчик попыток входа", zap.Error(err))
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleService.GetUserRoleNames(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponseDTO{
		User: dto.AuthUserDTO{
			ID:    user.ID,
			Login: user.Login,
			Fio:   user.Fio,
			Roles: roles,
		},
		Tokens: *tokens,
	}, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, attemptsKey string) {
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("AuthService: Не удалось увеличить счётчик попыток входа", zap.Error(err))
		return
	}
	if attempts == 1 {
		if _, err := s.cacheRepo.Expire(ctx, attemptsKey, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("AuthService: Не удалось выставить TTL счётчика попыток", zap.Error(err))
		}
	}
}

// issueTokens генерирует пару токенов и регистрирует refresh-токен
// в Redis. Refresh без записи в Redis считается отозванным.
func (s *AuthService) issueTokens(ctx context.Context, userID uint64) (*dto.TokenPairDTO, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(userID)
	if err != nil {
		s.logger.Error("AuthService: Ошибка генерации токенов", zap.Uint64("userID", userID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInternalServer
	}

	key := refreshTokenKey(userID, claims.ID)
	if err := s.cacheRepo.Set(ctx, key, "1", s.jwtService.GetRefreshTokenTTL()); err != nil {
		s.logger.Error("AuthService: Не удалось сохранить refresh-токен в Redis",
			zap.Uint64("userID", userID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessTokenTTL().Seconds()),
	}, nil
}

// RefreshToken обменивает действующий refresh-токен на новую пару.
// Использованный токен отзывается — каждый refresh одноразовый.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	key := refreshTokenKey(claims.UserID, claims.ID)
	if _, err := s.cacheRepo.Get(ctx, key); err != nil {
		s.logger.Warn("AuthService: Попытка обмена отозванного refresh-токена",
			zap.Uint64("userID", claims.UserID))
		return nil, apperrors.ErrInvalidToken
	}
	if err := s.cacheRepo.Del(ctx, key); err != nil {
		s.logger.Warn("AuthService: Не удалось отозвать refresh-токен", zap.Error(err))
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidToken
	}

	return s.issueTokens(ctx, user.ID)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return err
	}
	if !claims.IsRefreshToken {
		return apperrors.ErrTokenIsNotRefresh
	}
	return s.cacheRepo.Del(ctx, refreshTokenKey(claims.UserID, claims.ID))
}

// GetAuthUser возвращает профиль текущего пользователя с его ролями.
func (s *AuthService) GetAuthUser(ctx context.Context, userID uint64) (*dto.AuthUserDTO, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles, err := s.roleService.GetUserRoleNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthUserDTO{
		ID:    user.ID,
		Login: user.Login,
		Fio:   user.Fio,
		Roles: roles,
	}, nil
}
