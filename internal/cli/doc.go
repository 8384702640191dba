// Package cli реализует инструмент командной строки Composer.
//
// # Обзор
//
// CLI — тонкая обёртка над генератором: читает спецификацию pipeline
// из файла или stdin, загружает контекст выполнения и печатает (или
// записывает) сгенерированную Airflow DAG программу. Никаких сетевых
// вызовов и состояния между запусками.
//
// # Ключевые компоненты
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON (json.Encoder) — с флагом --json
//
// Данные и программы выводятся в stdout, сообщения — в stderr.
// Это позволяет использовать pipe: composer render pipeline.yaml > dag.py
//
// ## Commands
//
// Cobra-команды:
//   - render:    спецификация → текст DAG программы
//   - operators: list — таблица типов задач и классов операторов
//   - schedule:  next — следующие времена запуска для интервала
//
// Каждая группа создаётся через фабричную функцию (NewRenderCmd и т.д.),
// принимающую outputFn — замыкание для ленивого создания Output после
// парсинга PersistentFlags.
package cli
