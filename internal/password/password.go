package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyHash это корректный bcrypt хеш, используемый для выравнивания времени
// ответа при логине с несуществующим username. Сравнение с ним стоит столько же,
// сколько проверка реального пароля, поэтому по времени ответа нельзя отличить
// "нет такого пользователя" от "неверный пароль".
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher определяет интерфейс для хеширования и проверки паролей
type Hasher interface {
	// Hash возвращает соленый хеш пароля. Каждый вызов дает новый хеш
	// для одного и того же пароля (свежая случайная соль)
	Hash(password string) (string, error)

	// Verify проверяет пароль против сохраненного хеша.
	// Возвращает false (не ошибку) для некорректного хеша
	Verify(password, hash string) bool
}

// BcryptHasher реализует Hasher через bcrypt (адаптивный, соль встроена в хеш)
type BcryptHasher struct {
	cost int
}

// Compile-time check that BcryptHasher implements Hasher
var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher создает новый BcryptHasher
// cost вне диапазона bcrypt заменяется на bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash возвращает bcrypt хеш пароля со свежей случайной солью
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify сравнивает пароль с хешем, используя соль из самого хеша.
// bcrypt выполняет сравнение за константное время
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
