package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя (3-30 символов)
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль (минимум 6 символов)
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль
}

// UserData представляет публичные данные пользователя в ответах auth операций
type UserData struct {
	ID       int64  `json:"id"`       // числовой ID пользователя
	Username string `json:"username"` // username пользователя
}

// AuthResponse представляет ответ на успешную регистрацию или логин
type AuthResponse struct {
	Success bool      `json:"success"`         // флаг успеха операции
	Message string    `json:"message"`         // сообщение
	Data    *UserData `json:"data,omitempty"`  // данные пользователя
	Token   string    `json:"token,omitempty"` // session token (JWT)
}

// ProfileData представляет профиль пользователя
type ProfileData struct {
	ID        int64  `json:"id"`         // числовой ID пользователя
	Username  string `json:"username"`   // username пользователя
	Email     string `json:"email"`      // email пользователя
	CreatedAt string `json:"created_at"` // время создания аккаунта (RFC3339)
}

// ProfileResponse представляет ответ с профилем пользователя
type ProfileResponse struct {
	Success bool         `json:"success"` // флаг успеха операции
	Data    *ProfileData `json:"data"`    // профиль пользователя
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"` // всегда false
	Message string `json:"message"` // описание ошибки
}
