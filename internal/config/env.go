package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shaiso/Composer/internal/domain"
)

// LoadEnv загружает контекст выполнения из YAML-файла.
//
// Файл — плоский маппинг имя → SQL-текст:
//
//	daily_visits: SELECT * FROM visits WHERE day = @day
//	cleanup: DELETE FROM staging WHERE day < @day
//
// Каждая запись становится *domain.Query в Env, так что параметры
// задач могут ссылаться на неё как "$daily_visits". В notebook эту
// роль играют объекты, определённые в других ячейках.
func LoadEnv(path string) (domain.Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}

	var queries map[string]string
	if err := yaml.Unmarshal(data, &queries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	env := make(domain.Env, len(queries))
	for name, text := range queries {
		env[name] = &domain.Query{Name: name, Text: text}
	}

	return env, nil
}
