package domain

import "fmt"

// ValueKind — вид значения параметра задачи.
type ValueKind int

const (
	// KindNull — отсутствующее значение (null в YAML).
	KindNull ValueKind = iota

	// KindBool — булево значение.
	KindBool

	// KindInt — целое число.
	KindInt

	// KindFloat — число с плавающей точкой.
	KindFloat

	// KindString — строка.
	KindString

	// KindRef — ссылка на внешний объект из Env (например, *Query).
	KindRef
)

// Value — значение параметра задачи.
//
// Параметры приходят из YAML с разнородными типами, поэтому значение
// представлено закрытым набором вариантов: null, bool, int, float,
// string и непрозрачная ссылка на объект контекста. Правила
// форматирования для каждого варианта — на стороне генератора.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	ref  any
}

// NullValue возвращает null-значение.
func NullValue() Value {
	return Value{kind: KindNull}
}

// BoolValue возвращает булево значение.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// IntValue возвращает целочисленное значение.
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FloatValue возвращает значение с плавающей точкой.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// StringValue возвращает строковое значение.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// RefValue возвращает ссылку на внешний объект.
func RefValue(ref any) Value {
	return Value{kind: KindRef, ref: ref}
}

// ValueOf классифицирует произвольное значение из YAML-декодера.
//
// Числовые, булевы и nil значения получают соответствующий вид;
// строки — KindString; всё остальное (time.Time, map, slice, объекты
// из Env) — KindRef.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return NullValue()
	case bool:
		return BoolValue(x)
	case int:
		return IntValue(int64(x))
	case int64:
		return IntValue(x)
	case uint64:
		return IntValue(int64(x))
	case float32:
		return FloatValue(float64(x))
	case float64:
		return FloatValue(x)
	case string:
		return StringValue(x)
	default:
		return RefValue(v)
	}
}

// Kind возвращает вид значения.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Bool возвращает булево значение. Корректно только для KindBool.
func (v Value) Bool() bool {
	return v.b
}

// Int возвращает целое значение. Корректно только для KindInt.
func (v Value) Int() int64 {
	return v.i
}

// Float возвращает значение с плавающей точкой. Корректно только для KindFloat.
func (v Value) Float() float64 {
	return v.f
}

// Str возвращает строковое значение. Корректно только для KindString.
func (v Value) Str() string {
	return v.s
}

// Ref возвращает объект-ссылку. Корректно только для KindRef.
func (v Value) Ref() any {
	return v.ref
}

// String возвращает текстовое представление значения (для отладки
// и для цитируемых параметров).
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "<nil>"
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%v", v.f)
	case KindString:
		return v.s
	default:
		return fmt.Sprintf("%v", v.ref)
	}
}
