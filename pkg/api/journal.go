package api

import "time"

// Endpoints журнала тренировок
const (
	EntriesPath = "/api/v1/entries"
	StatsPath   = "/api/v1/stats"
	HealthPath  = "/api/v1/health"
)

// Entry представляет запись журнала: количество повторений упражнения за день
type Entry struct {
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	ID        string    `json:"id"`       // ID идентификатор записи (UUID, назначается клиентом)
	Exercise  string    `json:"exercise"` // Exercise название упражнения, например "pushups"
	Date      string    `json:"date"`     // Date день в формате YYYY-MM-DD
	Count     int       `json:"count"`    // Count количество повторений
	XP        int       `json:"xp,omitempty"`
}

// LogEntryRequest тело запроса на создание записи
type LogEntryRequest struct {
	ID       string `json:"id"`
	Exercise string `json:"exercise"`
	Date     string `json:"date"`
	Count    int    `json:"count"`
}

// UpdateEntryRequest тело запроса на изменение количества повторений
type UpdateEntryRequest struct {
	Count int `json:"count"`
}

// Stats агрегированная статистика пользователя (считается сервером)
type Stats struct {
	TotalXP       int `json:"total_xp"`
	Level         int `json:"level"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	PenaltyTasks  int `json:"penalty_tasks"`
	BonusTasks    int `json:"bonus_tasks"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
