package domain

// SQLSource — объект контекста, предоставляющий SQL-текст.
//
// В notebook параметр query ссылается на объект запроса; генератор
// извлекает из него SQL через этот интерфейс, а не форматирует сам объект.
type SQLSource interface {
	SQL() string
}

// Query — именованный SQL-запрос из контекста выполнения.
type Query struct {
	// Name — имя объекта в Env.
	Name string

	// Text — SQL-текст запроса.
	Text string
}

// SQL реализует SQLSource.
func (q *Query) SQL() string {
	return q.Text
}
