// Package engine содержит генератор Airflow DAG программ.
//
// Включает:
//   - generator.go — Render/Generate: спецификация → текст программы
//   - operators.go — таблица классов операторов и спец-правила параметров
//
// Engine отвечает за порядок и форму фрагментов генерируемой программы.
// Он ничего не исполняет и не валидирует семантику задач: циклы и ссылки
// на несуществующие задачи эмитятся как есть и проявляются только при
// исполнении движком оркестрации.
package engine
