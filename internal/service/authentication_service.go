package service

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/notifier"
	"doctree-web-server/internal/ports"
	"doctree-web-server/internal/security"
	"doctree-web-server/internal/util"
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthenticationService struct {
	jwtRepoInterface ports.JWTRepositoryInterface
	*config.AppConfig
	jwtServiceInterface ports.JWTServiceInterface
	userRepository      ports.UserRepository
}

func NewAuthenticationService(
	repo ports.JWTRepositoryInterface,
	cfg *config.AppConfig,
	service ports.JWTServiceInterface,
	userInterface ports.UserRepository,
) *AuthenticationService {
	return &AuthenticationService{
		repo,
		cfg,
		service,
		userInterface,
	}
}

func (s *AuthenticationService) Login(ctx context.Context, login, password, userAgent, ipAddress string) (*model.TokensPair, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("database connection не найден в context")
	}

	user, err := s.userRepository.FindByLogin(ctx, db, login)
	if err != nil {
		return nil, fmt.Errorf("пользователь не найден: %w", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, fmt.Errorf("неверный пароль")
	}

	tokens, refreshToken, err := s.jwtServiceInterface.GenerateAccessRefreshTokens(user.UUID)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	refreshToken.UserAgent = userAgent
	refreshToken.IpAddress = ipAddress

	if err := s.jwtRepoInterface.SaveRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("ошибка сохранения refresh токена: %w", err)
	}

	return tokens, nil
}

// RefreshToken обновляет пару токенов
// Требования к операции refresh:
//  1. Операцию refresh можно выполнить только той парой токенов, которая была выдана вместе.
//  2. Запрещает обновление токенов при изменении User-Agent и деавторизует пользователя,
//     который попытался выполнить обновление.
//  3. При попытке обновления с нового IP отправляет POST-запрос на заданный webhook.
//     Запрещать операцию в данном случае не нужно.
func (s *AuthenticationService) RefreshToken(ctx context.Context, userAgent string, ipAddress string, accessToken string, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.jwtServiceInterface.ValidateJWT(accessToken, []byte(s.AppConfig.JWT.SecretKey))
	if err != nil {
		return nil, util.LogError("не удалось провалидировать токен", err)
	}

	refreshTokenUUID := claims.RefreshTokenUUID
	userUUID := claims.UserUUID

	storedRefreshToken, err := s.jwtRepoInterface.FindByUUID(ctx, refreshTokenUUID)
	if err != nil {
		return nil, util.LogError("не удалось найти рефреш токен", err)
	}
	if storedRefreshToken.Used {
		log.Printf("refresh token %s уже был использован", refreshTokenUUID)
		return nil, fmt.Errorf("невалидный токен")
	}

	if time.Now().UTC().After(storedRefreshToken.ExpireAt) {
		log.Printf("refresh token %s просрочен", refreshTokenUUID)
		return nil, fmt.Errorf("невалидный токен")
	}

	if storedRefreshToken.UserAgent != userAgent {
		if err := s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID); err != nil {
			log.Printf("не удалось пометить токен использованным: %v", err)
		}
		log.Printf("refresh token %s: попытка обновления с другого User-Agent", refreshTokenUUID)
		return nil, fmt.Errorf("невалидный токен")
	}

	if storedRefreshToken.IpAddress != ipAddress {
		log.Printf("обнаружен вход с нового ip адреса, отправка webhook")
		go func() {
			if err := notifier.NotifyWebhook(s.AppConfig.Webhook.URL, userUUID, ipAddress, storedRefreshToken.IpAddress); err != nil {
				log.Printf("ошибка отправки webhook: %v", err)
			}
		}()
	}

	err = bcrypt.CompareHashAndPassword([]byte(storedRefreshToken.TokenHash), []byte(refreshToken))
	if err != nil {
		return nil, util.LogError("невалидный токен", err)
	}

	if err := s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID); err != nil {
		return nil, util.LogError("не удалось использовать токен", err)
	}

	tokensPair, newRefreshToken, err := s.jwtServiceInterface.GenerateAccessRefreshTokens(userUUID)
	if err != nil {
		return nil, util.LogError("ошибка генерации токенов", err)
	}

	newRefreshToken.UserAgent = userAgent
	newRefreshToken.IpAddress = ipAddress
	err = s.jwtRepoInterface.SaveRefreshToken(ctx, newRefreshToken)
	if err != nil {
		return nil, util.LogError("не удалось сохранить рефреш токен", err)
	}

	return tokensPair, nil
}

// Logout "деактивирует" пользователя.
// Изменяет статус поля used у refresh-токена и делает его равным true
func (s *AuthenticationService) Logout(ctx context.Context, refreshTokenUUID string) error {
	err := s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID)
	if err != nil {
		return fmt.Errorf("не удалось использовать токен: %w", err)
	}
	return nil
}
