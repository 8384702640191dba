package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shaiso/Composer/internal/config"
	"github.com/shaiso/Composer/internal/domain"
)

// importsPreamble — фиксированная преамбула импортов генерируемой программы.
const importsPreamble = `
from airflow import DAG
from airflow.operators.bash_operator import BashOperator
from airflow.contrib.operators.bigquery_operator import BigQueryOperator
from airflow.contrib.operators.bigquery_table_delete_operator import BigQueryTableDeleteOperator
from airflow.contrib.operators.bigquery_to_bigquery import BigQueryToBigQueryOperator
from airflow.contrib.operators.bigquery_to_gcs import BigQueryToCloudStorageOperator
from datetime import timedelta
from pytz import timezone
`

// pyDatetimeFormat — формат времени в генерируемом strptime-выражении.
// ISO 8601 без таймзоны; UTC навешивается через replace(tzinfo=...).
const pyDatetimeFormat = "%Y-%m-%dT%H:%M:%S"

// Render — полный цикл генерации: YAML-текст спецификации → текст
// Airflow DAG программы.
//
// Пустой текст спецификации — не ошибка: возвращается пустая строка
// (программа не эмитится). name — идентификатор DAG; env — контекст
// выполнения для резолва "$name" ссылок в параметрах задач.
func Render(specText, name string, env domain.Env) (string, error) {
	if specText == "" {
		return "", nil
	}

	spec, err := config.Parse(specText, env)
	if err != nil {
		return "", err
	}

	return Generate(spec, name)
}

// Generate рендерит разобранную спецификацию в текст программы.
//
// Порядок фрагментов фиксирован: преамбула импортов, блок default_args,
// объявление DAG, по одному объявлению оператора на задачу
// (лексикографически по taskID), затем set_upstream выражения в том же
// порядке задач, порядок зависимостей внутри задачи сохраняется.
//
// Зависимости не валидируются: ссылки на несуществующие задачи и циклы
// эмитятся как есть и проявляются только при исполнении движком.
func Generate(spec *domain.PipelineSpec, name string) (string, error) {
	if spec.Schedule == nil {
		return "", ErrMissingSchedule
	}
	if spec.Email == "" {
		return "", ErrMissingEmail
	}
	if spec.Tasks == nil {
		return "", ErrMissingTasks
	}

	taskIDs := make([]string, 0, len(spec.Tasks))
	for id := range spec.Tasks {
		taskIDs = append(taskIDs, id)
	}
	sort.Strings(taskIDs)

	var b strings.Builder
	b.WriteString(importsPreamble)
	b.WriteString(defaultArgsBlock(spec.Email, spec.Schedule.StartDate, spec.Schedule.EndDate))
	b.WriteString(dagDefinition(name, spec.Schedule.Interval))

	for _, id := range taskIDs {
		def, err := operatorDefinition(id, spec.Tasks[id])
		if err != nil {
			return "", err
		}
		b.WriteString(def)
	}

	for _, id := range taskIDs {
		b.WriteString(dependencyDefinition(id, spec.Tasks[id].UpStream))
	}

	return b.String(), nil
}

// defaultArgsBlock рендерит блок default_args, общий для всех задач DAG.
func defaultArgsBlock(email string, startDate, endDate time.Time) string {
	return fmt.Sprintf(`
default_args = {
    'owner': 'Composer',
    'depends_on_past': False,
    'email': ['%s'],
    'start_date': %s,
    'end_date': %s,
    'email_on_failure': True,
    'email_on_retry': False,
    'retries': 1,
    'retry_delay': timedelta(minutes=1),
}

`, email, datetimeExpr(startDate), datetimeExpr(endDate))
}

// datetimeExpr кодирует момент времени как strptime-выражение с явным
// навешиванием UTC.
//
// Литерал datetime не годится: YAML-парсер срезает таймзону при разборе,
// поэтому граница заново парсится уже внутри сгенерированной программы.
// Это документированный обходной путь, а не универсальный кодек времени.
func datetimeExpr(t time.Time) string {
	return fmt.Sprintf(
		"datetime.datetime.strptime('%s', '%s').replace(tzinfo=timezone('UTC'))",
		t.Format("2006-01-02T15:04:05"), pyDatetimeFormat)
}

// dagDefinition рендерит объявление DAG.
func dagDefinition(name, scheduleInterval string) string {
	return fmt.Sprintf(
		"dag = DAG(dag_id='%s', schedule_interval='%s', default_args=default_args)\n\n",
		name, scheduleInterval)
}

// operatorDefinition рендерит объявление оператора для одной задачи.
//
// Параметры сортируются по исходному имени (после дозаписи значений по
// умолчанию); task_id всегда первый аргумент, dag=dag — последний.
func operatorDefinition(taskID string, task domain.TaskSpec) (string, error) {
	if task.Type == "" {
		return "", fmt.Errorf("task %s: %w", taskID, ErrMissingTaskType)
	}

	className := OperatorClassName(task.Type)
	params := withOperatorDefaults(task.Params, className)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var args strings.Builder
	fmt.Fprintf(&args, "task_id='%s_id'", taskID)

	for _, name := range names {
		opName, opValue, err := operatorParam(name, domain.ValueOf(params[name]), className)
		if err != nil {
			return "", fmt.Errorf("task %s: %w", taskID, err)
		}
		args.WriteString(paramToken(opName, opValue))
	}

	return fmt.Sprintf("%s = %s(%s, dag=dag)\n", taskID, className, args.String()), nil
}

// paramToken рендерит один keyword-аргумент.
//
// Числа, булевы значения и null эмитятся без кавычек как литералы
// целевого языка; все остальные варианты — как цитируемая строка с
// текстовым представлением значения. Это структурное правило, а не
// вывод типов.
func paramToken(name string, value domain.Value) string {
	switch value.Kind() {
	case domain.KindNull:
		return fmt.Sprintf(", %s=None", name)
	case domain.KindBool:
		if value.Bool() {
			return fmt.Sprintf(", %s=True", name)
		}
		return fmt.Sprintf(", %s=False", name)
	case domain.KindInt:
		return fmt.Sprintf(", %s=%d", name, value.Int())
	case domain.KindFloat:
		return fmt.Sprintf(", %s=%s", name, strconv.FormatFloat(value.Float(), 'g', -1, 64))
	default:
		return fmt.Sprintf(", %s='%s'", name, value.String())
	}
}

// dependencyDefinition рендерит set_upstream выражения задачи.
// Порядок списка up_stream сохраняется.
func dependencyDefinition(taskID string, upstream []string) string {
	var b strings.Builder
	for _, dep := range upstream {
		fmt.Fprintf(&b, "%s.set_upstream(%s)\n", taskID, dep)
	}
	return b.String()
}
