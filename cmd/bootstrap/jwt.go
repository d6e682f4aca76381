package bootstrap

import (
	"time"

	"movie-reservation/internal/pkg/config"
	"movie-reservation/internal/pkg/errs"
	"movie-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}

	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
