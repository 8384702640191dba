package domain

import "time"

// PipelineSpec — спецификация pipeline.
//
// Это "программа" для Composer — описание графа задач, которое
// рендерится в исходный код Airflow DAG. Структура соответствует
// YAML-документу из notebook-ячейки:
//
//	email: foo@example.com
//	schedule:
//	  start_date: 2017-01-01T00:00:00Z
//	  end_date: 2017-01-02T00:00:00Z
//	  schedule_interval: '@daily'
//	tasks:
//	  print_hello:
//	    type: bash
//	    bash_command: echo hello
type PipelineSpec struct {
	// Email — адрес для уведомлений Airflow (email_on_failure).
	Email string `yaml:"email"`

	// Schedule — границы и интервал расписания DAG.
	// nil, если ключ schedule отсутствует в документе.
	Schedule *ScheduleSpec `yaml:"schedule"`

	// Tasks — задачи графа (taskID → определение).
	// Порядок эмиссии — лексикографический по taskID, не порядок документа.
	Tasks map[string]TaskSpec `yaml:"tasks"`
}

// ScheduleSpec — расписание pipeline.
type ScheduleSpec struct {
	// StartDate — начало расписания. UTC-момент; пользователь обязан
	// указывать время в формате YYYY-MM-DDTHH:MM:SSZ (с суффиксом Z).
	StartDate time.Time `yaml:"start_date"`

	// EndDate — конец расписания. Тот же формат, что и StartDate.
	EndDate time.Time `yaml:"end_date"`

	// Interval — интервал запуска: cron-выражение или Airflow-пресет
	// ('@daily', '@hourly', ...). Передаётся в DAG как есть.
	Interval string `yaml:"schedule_interval"`
}

// TaskSpec — определение одной задачи (узла графа).
//
// Зарезервированные ключи type и up_stream выделены в поля;
// все остальные ключи документа попадают в Params и становятся
// keyword-аргументами оператора при генерации.
type TaskSpec struct {
	// Type — тип задачи: "bq", "bq.query", "bash" и т.д.
	// Определяет класс Airflow-оператора (см. engine.OperatorClassName).
	Type string `yaml:"type"`

	// UpStream — список taskID, от которых зависит эта задача.
	// Порядок сохраняется при эмиссии set_upstream.
	UpStream []string `yaml:"up_stream"`

	// Params — произвольные параметры оператора.
	Params map[string]any `yaml:",inline"`
}

// Env — контекст выполнения: внешние объекты, на которые ссылаются
// параметры задач (например, query-объекты из notebook). Генератор
// только читает из Env, не владея жизненным циклом объектов.
type Env map[string]any
