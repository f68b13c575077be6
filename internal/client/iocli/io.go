package iocli

// IO абстрагирует консольный ввод/вывод команд клиента,
// чтобы в тестах его можно было подменить
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)

	// ReadInput читает строку с echo (username, email)
	ReadInput(prompt string) (string, error)

	// ReadPassword читает строку без echo (пароли)
	ReadPassword(prompt string) (string, error)
}
