package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidMutation возвращается, если мутация не может быть поставлена в очередь
var ErrInvalidMutation = errors.New("invalid mutation")

// Method тип удаленной операции над ресурсом.
// Набор значений закрыт: CREATE, UPDATE, DELETE.
type Method string

const (
	MethodCreate Method = "CREATE"
	MethodUpdate Method = "UPDATE"
	MethodDelete Method = "DELETE"
)

// Valid сообщает, входит ли метод в закрытый набор
func (m Method) Valid() bool {
	switch m {
	case MethodCreate, MethodUpdate, MethodDelete:
		return true
	default:
		return false
	}
}

// Mutation представляет одну удаленную операцию записи.
// Payload хранится как JSON, чтобы элемент очереди можно было сохранить на диск
// и восстановить после перезапуска процесса.
type Mutation struct {
	Method   Method          `json:"method"`   // Method тип операции
	Endpoint string          `json:"endpoint"` // Endpoint путь ресурса, например "/api/v1/entries/42"
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// NewCreate создает мутацию CREATE с сериализованным payload
func NewCreate(endpoint string, payload any) (Mutation, error) {
	return NewMutation(MethodCreate, endpoint, payload)
}

// NewUpdate создает мутацию UPDATE с сериализованным payload
func NewUpdate(endpoint string, payload any) (Mutation, error) {
	return NewMutation(MethodUpdate, endpoint, payload)
}

// NewDelete создает мутацию DELETE без payload
func NewDelete(endpoint string) Mutation {
	return Mutation{Method: MethodDelete, Endpoint: endpoint}
}

// NewMutation создает мутацию произвольного метода; payload == nil означает пустое тело
func NewMutation(method Method, endpoint string, payload any) (Mutation, error) {
	m := Mutation{Method: method, Endpoint: endpoint}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Mutation{}, fmt.Errorf("failed to marshal payload: %w", err)
		}
		m.Payload = data
	}
	return m, m.Validate()
}

// Validate проверяет, что мутацию можно отправить
func (m Mutation) Validate() error {
	if !m.Method.Valid() {
		return fmt.Errorf("%w: unknown method %q", ErrInvalidMutation, m.Method)
	}
	if m.Endpoint == "" {
		return fmt.Errorf("%w: empty endpoint", ErrInvalidMutation)
	}
	if len(m.Payload) > 0 && !json.Valid(m.Payload) {
		return fmt.Errorf("%w: payload is not valid JSON", ErrInvalidMutation)
	}
	return nil
}
