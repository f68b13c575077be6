package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/authd/internal/server/handlers"
	"github.com/iudanet/authd/internal/server/token"
)

// TokenVerifier проверяет session token и возвращает его claims
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// AuthMiddleware создает middleware для проверки session токена.
// Это единственная точка входа для защищенных маршрутов: без валидного
// Bearer токена запрос дальше не проходит.
// Конкретная причина отказа (нет токена, подпись, срок) уходит только в лог,
// клиент получает единообразный 401
func AuthMiddleware(logger *slog.Logger, tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header",
					"method", r.Method, "path", r.URL.Path)
				unauthorized(logger, w, "authentication required")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("invalid Authorization header format",
					"method", r.Method, "path", r.URL.Path)
				unauthorized(logger, w, "authentication required")
				return
			}

			// Валидируем токен
			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				unauthorized(logger, w, "invalid or expired token")
				return
			}

			// Публикуем идентичность из токена в контекст запроса
			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, claims.Username)

			logger.Debug("user authenticated",
				"user_id", claims.UserID, "username", claims.Username)

			// Передаем запрос дальше с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized отправляет единообразный 401 ответ
func unauthorized(logger *slog.Logger, w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(`{"success":false,"message":"` + message + `"}`)); err != nil {
		logger.Error("failed to write unauthorized response", "error", err)
	}
}
