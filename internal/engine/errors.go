package engine

import "errors"

// Ошибки генерации программы.
var (
	// ErrMissingSchedule — в спецификации нет ключа schedule.
	ErrMissingSchedule = errors.New("pipeline spec has no schedule")

	// ErrMissingEmail — в спецификации нет ключа email.
	ErrMissingEmail = errors.New("pipeline spec has no email")

	// ErrMissingTasks — в спецификации нет ключа tasks.
	ErrMissingTasks = errors.New("pipeline spec has no tasks")

	// ErrMissingTaskType — у задачи не указан type.
	ErrMissingTaskType = errors.New("task has no type")

	// ErrNotSQLSource — значение параметра query не предоставляет SQL-текст.
	ErrNotSQLSource = errors.New("query param is not a SQL source")
)
