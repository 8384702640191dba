// Package schedule содержит вспомогательные функции для интервалов
// расписания (cron-выражения и Airflow-пресеты).
//
// Используется только командой `composer schedule next` как удобство
// при подборе schedule_interval. Генератор программ расписание не
// интерпретирует.
package schedule
