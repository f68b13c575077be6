package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL время жизни access token по умолчанию
const DefaultTTL = 3600 * time.Second

// Ошибки проверки токена. Для вызывающего кода исход одинаковый (отказ),
// но виды различимы для логирования и тестов
var (
	// ErrTokenMalformed токен не разбирается на три сегмента или payload не декодируется
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenSignature подпись не совпадает с пересчитанной
	ErrTokenSignature = errors.New("token signature is invalid")

	// ErrTokenExpired срок действия токена истек
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid токен не прошел проверку по иной причине
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims представляет JWT claims нашего приложения
type Claims struct {
	Username string `json:"username"` // username пользователя
	UserID   int64  `json:"id"`       // числовой ID пользователя
	jwt.RegisteredClaims
}

// Service выпускает и проверяет подписанные session токены (HS256).
// Секрет загружается один раз при старте процесса и не меняется
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService создает новый token service
// secret должен быть непустым, его отсутствие это фатальная ошибка конфигурации
// ttl <= 0 заменяется на DefaultTTL (3600 секунд)
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// TTL возвращает настроенное время жизни токена
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue создает подписанный токен для пользователя
// Возвращает токен и время жизни в секундах
func (s *Service) Issue(userID int64, username string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "authd",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(s.ttl.Seconds()), nil
}

// Verify проверяет подпись и срок действия токена и возвращает claims.
// Возвращает ErrTokenMalformed, ErrTokenSignature, ErrTokenExpired
// или ErrTokenInvalid в зависимости от причины отказа
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %w", ErrTokenSignature, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
