// Package telemetry обеспечивает наблюдаемость инструмента.
//
// Включает:
//   - logging.go — structured logging через slog
//
// CLI использует единый формат логирования; логи идут в stderr,
// чтобы не смешиваться со сгенерированной программой в stdout.
package telemetry
