package journal

import "errors"

var (
	// ErrOffline возвращается для чтений и ручной синхронизации без связи с сервером
	ErrOffline = errors.New("offline")

	// ErrRequestFailed сервер вернул неуспешный статус на чтение
	ErrRequestFailed = errors.New("request failed")

	// ErrInvalidInput неверные данные записи журнала
	ErrInvalidInput = errors.New("invalid input")
)
