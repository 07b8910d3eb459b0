package models

import (
	"fmt"
	"strings"
	"time"
)

// Priority приоритет элемента очереди синхронизации
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityNormal Priority = "NORMAL"
	PriorityLow    Priority = "LOW"
)

// Rank возвращает порядковый номер приоритета: меньше - раньше.
// Неизвестный или пустой приоритет считается NORMAL.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// ParsePriority разбирает приоритет без учета регистра
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToUpper(s)); p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return p, nil
	case "":
		return PriorityNormal, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// ConflictHint подсказка о том, как вызывающая сторона хочет разрешать конфликты.
// Слой синхронизации только переносит подсказку, но не применяет ее.
type ConflictHint string

const (
	ConflictNone      ConflictHint = ""
	ConflictOverwrite ConflictHint = "OVERWRITE"
	ConflictMerge     ConflictHint = "MERGE"
	ConflictSkip      ConflictHint = "SKIP"
)

// SyncQueueItem представляет одну отложенную удаленную мутацию в очереди.
// RetryCount только растет; повторно поставленная мутация получает новый ID.
type SyncQueueItem struct {
	EnqueuedAt   time.Time    `json:"enqueued_at"`            // EnqueuedAt время постановки в очередь
	ID           string       `json:"id"`                     // ID производный от method+endpoint+времени постановки
	Priority     Priority     `json:"priority"`               // Priority HIGH, NORMAL или LOW
	ConflictHint ConflictHint `json:"conflict_hint,omitempty"` // ConflictHint подсказка разрешения конфликтов
	BatchID      string       `json:"batch_id,omitempty"`     // BatchID общий идентификатор пакета (addBatch)
	OperationID  string       `json:"operation_id,omitempty"` // OperationID связанная OfflineOperation, если есть
	Mutation     Mutation     `json:"mutation"`               // Mutation сама операция
	RetryCount   int          `json:"retry_count"`            // RetryCount количество неудачных попыток
	Seq          uint64       `json:"seq"`                    // Seq порядок вставки, разрешает равные EnqueuedAt
}

// NewSyncQueueItemID строит идентификатор элемента из метода, endpoint и времени постановки.
// seq делает идентификатор уникальным, даже если два элемента поставлены в одну наносекунду.
func NewSyncQueueItemID(m Mutation, enqueuedAt time.Time, seq uint64) string {
	return fmt.Sprintf("%s:%s:%d:%d", strings.ToLower(string(m.Method)), m.Endpoint, enqueuedAt.UnixNano(), seq)
}

// Less задает порядок обработки: приоритет, затем время постановки (FIFO)
func (i *SyncQueueItem) Less(other *SyncQueueItem) bool {
	if i.Priority.Rank() != other.Priority.Rank() {
		return i.Priority.Rank() < other.Priority.Rank()
	}
	if !i.EnqueuedAt.Equal(other.EnqueuedAt) {
		return i.EnqueuedAt.Before(other.EnqueuedAt)
	}
	return i.Seq < other.Seq
}

// Clone создает копию элемента очереди
func (i *SyncQueueItem) Clone() *SyncQueueItem {
	c := *i
	if i.Mutation.Payload != nil {
		c.Mutation.Payload = append([]byte(nil), i.Mutation.Payload...)
	}
	return &c
}

// SyncProgress агрегированные счетчики прохождения элементов через очередь
type SyncProgress struct {
	CurrentBatchID string `json:"current_batch_id"` // CurrentBatchID пакет, обрабатываемый в данный момент
	Total          int    `json:"total"`            // Total сколько элементов поставлено
	Completed      int    `json:"completed"`        // Completed сколько успешно отправлено
	Failed         int    `json:"failed"`           // Failed сколько исчерпали попытки
}
