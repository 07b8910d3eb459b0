// Package iocli abstracts the terminal for CLI commands.
package iocli

import "io"

//go:generate moq -out io_mock.go . IO

// IO ввод/вывод CLI. Как io.Writer используется для таблиц и шаблонов.
type IO interface {
	io.Writer
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput печатает prompt и возвращает введенную строку без перевода строки
	ReadInput(prompt string) (string, error)
}
