package config

import "errors"

// Ошибки разбора спецификации pipeline.
var (
	// ErrInvalidYAML — текст спецификации не является валидным YAML.
	ErrInvalidYAML = errors.New("invalid yaml")

	// ErrUndefinedReference — параметр ссылается на имя, которого нет в Env.
	ErrUndefinedReference = errors.New("undefined reference")
)
