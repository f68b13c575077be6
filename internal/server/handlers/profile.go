package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/authd/internal/server/auth"
	"github.com/iudanet/authd/internal/server/storage"
	"github.com/iudanet/authd/pkg/api"
)

// ProfileHandler обрабатывает запросы профиля пользователя.
// Все маршруты защищены auth middleware: идентичность берется из контекста
type ProfileHandler struct {
	logger      *slog.Logger
	authService *auth.Service
}

// NewProfileHandler создает новый handler для профиля
func NewProfileHandler(logger *slog.Logger, authService *auth.Service) *ProfileHandler {
	return &ProfileHandler{
		logger:      logger,
		authService: authService,
	}
}

// GetOwnProfile обрабатывает GET /api/v1/profile
// Возвращает профиль аутентифицированного пользователя
func (h *ProfileHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		// Сюда можно попасть только минуя auth middleware
		h.logger.ErrorContext(ctx, "no authenticated user in context")
		sendError(h.logger, w, "authentication required", http.StatusUnauthorized)
		return
	}

	h.respondProfile(w, r, userID)
}

// GetProfileByID обрабатывает GET /api/v1/profile/{id}
// Профиль доступен только самому пользователю: id в пути должен совпадать
// с идентичностью из токена
func (h *ProfileHandler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "no authenticated user in context")
		sendError(h.logger, w, "authentication required", http.StatusUnauthorized)
		return
	}

	requestedID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid user id", http.StatusBadRequest)
		return
	}

	if requestedID != userID {
		h.logger.WarnContext(ctx, "profile access denied",
			slog.Int64("user_id", userID),
			slog.Int64("requested_id", requestedID))
		sendError(h.logger, w, "access denied", http.StatusForbidden)
		return
	}

	h.respondProfile(w, r, requestedID)
}

// respondProfile загружает аккаунт и отправляет профиль
func (h *ProfileHandler) respondProfile(w http.ResponseWriter, r *http.Request, userID int64) {
	ctx := r.Context()

	user, err := h.authService.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "profile not found", slog.Int64("user_id", userID))
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get profile", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ProfileResponse{
		Success: true,
		Data: &api.ProfileData{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		},
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
