package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/authd/internal/server/auth"
	"github.com/iudanet/authd/pkg/api"
)

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger      *slog.Logger
	authService *auth.Service
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authService: authService,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			h.logger.WarnContext(ctx, "register validation failed",
				slog.String("username", req.Username))
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, auth.ErrDuplicateAccount):
			h.logger.WarnContext(ctx, "register conflict",
				slog.String("username", req.Username))
			sendError(h.logger, w, "username or email already exists", http.StatusConflict)
		default:
			h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
			sendError(h.logger, w, "failed to register user", http.StatusInternalServerError)
		}
		return
	}

	resp := api.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Data: &api.UserData{
			ID:       result.UserID,
			Username: result.Username,
		},
		Token: result.Token,
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		// Причина отказа (нет пользователя или неверный пароль) наружу
		// не раскрывается, клиент видит единый ответ
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.WarnContext(ctx, "login failed",
				slog.String("username", req.Username))
			sendError(h.logger, w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to log in user", slog.Any("error", err))
		sendError(h.logger, w, "failed to log in", http.StatusInternalServerError)
		return
	}

	resp := api.AuthResponse{
		Success: true,
		Message: "Login successful",
		Data: &api.UserData{
			ID:       result.UserID,
			Username: result.Username,
		},
		Token: result.Token,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
