// Package config разбирает YAML-спецификацию pipeline.
//
// Структура:
//   - config.go — Parse: YAML → domain.PipelineSpec + резолв "$name" ссылок
//   - env.go    — LoadEnv: загрузка контекста выполнения из файла запросов
//
// Пакет отвечает только за разбор и резолв ссылок. Проверка
// обязательных ключей и вся генерация — в пакете engine.
package config
