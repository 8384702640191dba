package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shaiso/Composer/internal/domain"
)

// Parse разбирает YAML-текст pipeline и резолвит ссылки на контекст.
//
// Строковые значения параметров вида "$name" заменяются на объект
// env["name"] целиком (интерполяция внутри строк не поддерживается).
// Ссылка на отсутствующее имя — ошибка ErrUndefinedReference.
//
// Отсутствие обязательных ключей (email, schedule, tasks) ошибкой
// не считается: их наличие проверяет генератор в момент обращения.
func Parse(text string, env domain.Env) (*domain.PipelineSpec, error) {
	var spec domain.PipelineSpec
	if err := yaml.Unmarshal([]byte(text), &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if env == nil {
		env = domain.Env{}
	}

	for taskID, task := range spec.Tasks {
		for name, value := range task.Params {
			resolved, err := resolveRef(value, env)
			if err != nil {
				return nil, fmt.Errorf("task %s, param %s: %w", taskID, name, err)
			}
			task.Params[name] = resolved
		}
	}

	return &spec, nil
}

// resolveRef заменяет "$name" на объект из env. Остальные значения
// возвращаются без изменений.
func resolveRef(value any, env domain.Env) (any, error) {
	s, ok := value.(string)
	if !ok || !strings.HasPrefix(s, "$") {
		return value, nil
	}

	name := s[1:]
	obj, exists := env[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedReference, name)
	}

	return obj, nil
}
