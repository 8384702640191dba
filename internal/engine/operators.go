package engine

import (
	"fmt"
	"sort"

	"github.com/shaiso/Composer/internal/domain"
)

// operatorClassPrefixes — маппинг типа задачи на префикс имени класса
// Airflow-оператора. Фиксированная таблица; расширяется добавлением записей.
var operatorClassPrefixes = map[string]string{
	"bq":              "BigQuery",
	"bq.execute":      "BigQuery",
	"bq.query":        "BigQuery",
	"bq-table-delete": "BigQueryTableDelete",
	"bq.extract":      "BigQueryToCloudStorage",
	"bash":            "Bash",
}

// bigQueryOperatorClass — класс, для которого действуют спец-правила
// подстановки параметров (см. operatorParam, withOperatorDefaults).
const bigQueryOperatorClass = "BigQueryOperator"

// OperatorClassName возвращает имя класса Airflow-оператора для типа задачи.
//
// Неизвестный тип не является ошибкой: токен проходит насквозь как
// префикс ("custom" → "customOperator"). Ошибка несуществующего класса
// проявится только при исполнении сгенерированной программы движком.
func OperatorClassName(taskType string) string {
	prefix, known := operatorClassPrefixes[taskType]
	if !known {
		prefix = taskType
	}
	return prefix + "Operator"
}

// OperatorTypes возвращает отсортированный список известных типов задач.
func OperatorTypes() []string {
	types := make([]string, 0, len(operatorClassPrefixes))
	for t := range operatorClassPrefixes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// operatorParam возвращает имя и значение keyword-аргумента оператора
// для параметра задачи.
//
// Спец-правило: у BigQueryOperator параметр query публикуется под
// именем bql, а значением становится SQL-текст объекта-ссылки. Для
// остальных параметров имя и значение проходят без изменений.
func operatorParam(name string, value domain.Value, className string) (string, domain.Value, error) {
	if className == bigQueryOperatorClass && name == "query" {
		src, ok := value.Ref().(domain.SQLSource)
		if value.Kind() != domain.KindRef || !ok {
			return "", domain.Value{}, fmt.Errorf("%w: param query is %T", ErrNotSQLSource, value.Ref())
		}
		return "bql", domain.StringValue(src.SQL()), nil
	}
	return name, value, nil
}

// withOperatorDefaults возвращает копию параметров с дозаписанными
// значениями по умолчанию для данного класса оператора. Исходный
// маппинг не модифицируется.
//
// Сейчас единственное правило: BigQueryOperator без явного
// use_legacy_sql получает use_legacy_sql=false.
func withOperatorDefaults(params map[string]any, className string) map[string]any {
	out := make(map[string]any, len(params)+1)
	for name, value := range params {
		out[name] = value
	}

	if className == bigQueryOperatorClass {
		if _, set := out["use_legacy_sql"]; !set {
			out["use_legacy_sql"] = false
		}
	}

	return out
}
