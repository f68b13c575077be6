package auth

import "errors"

// Доменные ошибки auth сервиса. Ожидаемые отказы возвращаются типизированно,
// чтобы handlers могли ветвиться по errors.Is без разбора текста
var (
	// ErrValidation входные данные не прошли проверку формы,
	// хранилище при этом не затрагивалось
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateAccount username или email уже заняты.
	// Единый исход и для быстрой проверки, и для конфликта на вставке
	ErrDuplicateAccount = errors.New("username or email already exists")

	// ErrInvalidCredentials неверный username или пароль.
	// Намеренно не различает "нет такого пользователя" и "неверный пароль"
	ErrInvalidCredentials = errors.New("invalid username or password")
)
