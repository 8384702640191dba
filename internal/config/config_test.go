package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shaiso/Composer/internal/domain"
)

func TestParse_FullSpec(t *testing.T) {
	text := `
email: foo@example.com
schedule:
  start_date: 2017-01-01T00:00:00Z
  end_date: 2017-01-02T00:00:00Z
  schedule_interval: '@daily'
tasks:
  current_date:
    type: bash
    bash_command: date
    up_stream:
      - print_hello
  print_hello:
    type: bash
    bash_command: echo hello
`
	spec, err := Parse(text, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if spec.Email != "foo@example.com" {
		t.Errorf("email = %q", spec.Email)
	}

	// Даты парсятся как UTC-моменты
	if spec.Schedule == nil {
		t.Fatal("schedule is nil")
	}
	wantStart := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	if !spec.Schedule.StartDate.Equal(wantStart) {
		t.Errorf("start_date = %v, want %v", spec.Schedule.StartDate, wantStart)
	}
	if spec.Schedule.Interval != "@daily" {
		t.Errorf("schedule_interval = %q", spec.Schedule.Interval)
	}

	// Зарезервированные ключи уходят в поля, остальные — в Params
	task, ok := spec.Tasks["current_date"]
	if !ok {
		t.Fatal("current_date not parsed")
	}
	if task.Type != "bash" {
		t.Errorf("type = %q", task.Type)
	}
	if len(task.UpStream) != 1 || task.UpStream[0] != "print_hello" {
		t.Errorf("up_stream = %v", task.UpStream)
	}
	if task.Params["bash_command"] != "date" {
		t.Errorf("params = %v", task.Params)
	}
	if _, leaked := task.Params["type"]; leaked {
		t.Error("reserved key type leaked into params")
	}
	if _, leaked := task.Params["up_stream"]; leaked {
		t.Error("reserved key up_stream leaked into params")
	}
}

func TestParse_MissingKeysAreNotParseErrors(t *testing.T) {
	// Наличие обязательных ключей проверяет генератор, не парсер
	spec, err := Parse("email: a@b.c", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Schedule != nil {
		t.Error("schedule should be nil")
	}
	if spec.Tasks != nil {
		t.Error("tasks should be nil")
	}
}

func TestParse_ResolvesReferences(t *testing.T) {
	query := &domain.Query{Name: "daily", Text: "SELECT 1"}
	env := domain.Env{"daily": query}

	text := `
email: a@b.c
tasks:
  report:
    type: bq.query
    query: $daily
`
	spec, err := Parse(text, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ссылка заменяется на объект из Env целиком
	if spec.Tasks["report"].Params["query"] != query {
		t.Errorf("reference not resolved: %v", spec.Tasks["report"].Params["query"])
	}
}

func TestParse_UndefinedReference(t *testing.T) {
	text := `
email: a@b.c
tasks:
  report:
    type: bq.query
    query: $missing
`
	_, err := Parse(text, domain.Env{})
	if !errors.Is(err, ErrUndefinedReference) {
		t.Errorf("expected ErrUndefinedReference, got %v", err)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse("tasks: [unclosed", nil)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("expected ErrInvalidYAML, got %v", err)
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.yaml")
	content := "daily_visits: SELECT * FROM visits\ncleanup: DELETE FROM staging\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(env))
	}

	q, ok := env["daily_visits"].(*domain.Query)
	if !ok {
		t.Fatalf("entry is %T, want *domain.Query", env["daily_visits"])
	}
	if q.SQL() != "SELECT * FROM visits" {
		t.Errorf("SQL() = %q", q.SQL())
	}
	if q.Name != "daily_visits" {
		t.Errorf("Name = %q", q.Name)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
