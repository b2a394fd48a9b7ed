package service

import (
	"errors"
	"time"

	"asistencia/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// AuthService authenticates the single admin account from config and
// issues JWTs for the API.
type AuthService struct {
	cfg    *config.ServerConfig
	logger *logrus.Logger
}

var ErrInvalidCredentials = errors.New("invalid credentials")

func NewAuthService(cfg *config.ServerConfig) *AuthService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AuthService{cfg: cfg, logger: logger}
}

func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.cfg.AdminUser {
		s.logger.WithField("username", username).Warn("Login failed: unknown user")
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.cfg.AdminPassHash, []byte(password)) != nil {
		s.logger.WithField("username", username).Warn("Login failed: wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", err
	}

	s.logger.WithField("username", username).Info("Login ok")
	return token, nil
}
