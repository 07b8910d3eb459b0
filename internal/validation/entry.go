package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ExercisePattern определяет допустимый формат названия упражнения
// Латинские буквы, цифры, пробел, дефис и нижнее подчеркивание
// Длина: 2-48 символов
var ExercisePattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]{2,48}$`)

// EntryIDPattern допустимый идентификатор записи журнала
var EntryIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-]{1,64}$`)

const (
	// MinExerciseLen минимальная длина названия упражнения
	MinExerciseLen = 2
	// MaxExerciseLen максимальная длина названия упражнения
	MaxExerciseLen = 48
	// MaxCount максимальное количество повторений за одну запись
	MaxCount = 10000
)

// NormalizeExercise приводит название к каноническому виду: нижний регистр,
// без лишних пробелов
func NormalizeExercise(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ValidateExercise проверяет название упражнения
func ValidateExercise(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("exercise cannot be empty")
	}

	if len(name) < MinExerciseLen {
		return fmt.Errorf("exercise must be at least %d characters long", MinExerciseLen)
	}

	if len(name) > MaxExerciseLen {
		return fmt.Errorf("exercise must not exceed %d characters", MaxExerciseLen)
	}

	if !ExercisePattern.MatchString(name) {
		return fmt.Errorf("exercise can only contain letters, numbers, spaces, hyphens and underscores")
	}

	return nil
}

// ValidateCount проверяет количество повторений (1..MaxCount)
func ValidateCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("count must be positive")
	}
	if count > MaxCount {
		return fmt.Errorf("count must not exceed %d", MaxCount)
	}
	return nil
}

// ParseDate разбирает дату в формате YYYY-MM-DD. Пустая строка означает today.
// Даты в будущем не допускаются.
func ParseDate(s string, today time.Time) (string, error) {
	day := today.Format(time.DateOnly)
	if s == "" {
		return day, nil
	}

	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return "", fmt.Errorf("date must be in YYYY-MM-DD format")
	}

	if d.Format(time.DateOnly) > day {
		return "", fmt.Errorf("date cannot be in the future")
	}

	return d.Format(time.DateOnly), nil
}

// ValidateEntryID проверяет идентификатор записи журнала
func ValidateEntryID(id string) error {
	if id == "" {
		return fmt.Errorf("entry id cannot be empty")
	}
	if !EntryIDPattern.MatchString(id) {
		return fmt.Errorf("entry id can only contain letters, numbers and hyphens")
	}
	return nil
}
