package ports

import (
	"doctree-web-server/internal/model"
	"context"
)

type AuthenticationService interface {
	Login(ctx context.Context, login, password, userAgent, ipAddress string) (*model.TokensPair, error)
	RefreshToken(ctx context.Context, userAgent, ipAddress, accessToken, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshTokenUUID string) error
}
