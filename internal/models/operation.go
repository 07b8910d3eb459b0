package models

import (
	"encoding/json"
	"time"
)

// OperationStatus состояние OfflineOperation.
// Переходы: PENDING -> SYNCED (запись удаляется) или PENDING -> FAILED.
type OperationStatus string

const (
	OperationPending OperationStatus = "PENDING"
	OperationSynced  OperationStatus = "SYNCED"
	OperationFailed  OperationStatus = "FAILED"
)

// OfflineOperation долговечная запись о мутации, созданной клиентом.
// Сохраняется на диск при каждом изменении, чтобы пережить перезапуск процесса.
type OfflineOperation struct {
	EnqueuedAt  time.Time       `json:"enqueued_at"`             // EnqueuedAt время создания операции
	ID          string          `json:"id"`                      // ID уникальный идентификатор (UUID)
	Type        Method          `json:"type"`                    // Type CREATE, UPDATE или DELETE
	Endpoint    string          `json:"endpoint"`                // Endpoint путь ресурса
	Status      OperationStatus `json:"status"`                  // Status PENDING, SYNCED или FAILED
	QueueItemID string          `json:"queue_item_id,omitempty"` // QueueItemID элемент очереди, через который идет отправка
	LastError   string          `json:"last_error,omitempty"`    // LastError причина последней неудачи
	Payload     json.RawMessage `json:"payload,omitempty"`       // Payload тело запроса
}

// Mutation возвращает мутацию, которую нужно отправить для этой операции
func (o *OfflineOperation) Mutation() Mutation {
	return Mutation{Method: o.Type, Endpoint: o.Endpoint, Payload: o.Payload}
}

// Clone создает копию операции
func (o *OfflineOperation) Clone() *OfflineOperation {
	c := *o
	if o.Payload != nil {
		c.Payload = append(json.RawMessage(nil), o.Payload...)
	}
	return &c
}
