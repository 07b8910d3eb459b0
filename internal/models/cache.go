package models

import "time"

// CacheEntry элемент хранилища кэша.
// Инвариант: ExpiresAt строго позже CreatedAt.
type CacheEntry[V any] struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время вставки, по нему выбирается жертва вытеснения
	ExpiresAt time.Time `json:"expires_at"` // ExpiresAt момент истечения срока жизни
	SizeRank  time.Time `json:"size_rank"`  // SizeRank ранг вытеснения (совпадает с CreatedAt)
	Value     V         `json:"value"`      // Value закэшированное значение
	Key       string    `json:"key"`        // Key ключ записи
}

// Expired сообщает, истек ли срок жизни записи к моменту now
func (e *CacheEntry[V]) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// CacheStats счетчики работы кэша. Сбрасываются только Clear.
type CacheStats struct {
	LastCleared time.Time `json:"last_cleared"` // LastCleared время последней полной очистки
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	Size        int64     `json:"size"`
}
