package middleware

import (
	"context"
	"errors"
	"net/http"

	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	TokenIDKey  contextKey = "token_id"
)

// LoginPath is where unauthenticated requests are sent
const LoginPath = "/login"

type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
	log         *logrus.Logger
}

func NewAuthMiddleware(authUsecase usecase.AuthUsecase, cookieName string, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookieName:  cookieName,
		log:         log,
	}
}

// Authenticate lets the request through only with a live session cookie.
// Anything else is redirected to the login page before the handler runs.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			response.Redirect(w, r, LoginPath)
			return
		}

		claims, err := m.authUsecase.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, usecase.ErrInvalidSession) {
				m.log.Warnf("Failed to authenticate session: %+v", err)
			}
			response.Redirect(w, r, LoginPath)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetUsernameFromContext extracts the username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
