package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser — парсер интервалов расписания. Принимает стандартные
// пятипольные cron-выражения и Airflow-пресеты (@hourly, @daily, ...).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// NextTimes вычисляет n следующих времён запуска для интервала.
// Времена возвращаются в UTC.
func NextTimes(interval string, from time.Time, n int) ([]time.Time, error) {
	sched, err := cronParser.Parse(interval)
	if err != nil {
		return nil, fmt.Errorf("parse schedule interval %q: %w", interval, err)
	}

	times := make([]time.Time, 0, n)
	next := from
	for i := 0; i < n; i++ {
		next = sched.Next(next)
		times = append(times, next.UTC())
	}

	return times, nil
}

// ValidateInterval проверяет, разбирается ли интервал расписания.
//
// Только для интерактивных подсказок CLI: генератор интервал не
// валидирует и передаёт его в DAG как есть.
func ValidateInterval(interval string) error {
	if _, err := cronParser.Parse(interval); err != nil {
		return fmt.Errorf("invalid schedule interval %q: %w", interval, err)
	}
	return nil
}
