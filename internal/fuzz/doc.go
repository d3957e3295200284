// Package fuzztests houses Go fuzz harnesses for the text format front end
// (source -> lexer -> parser -> formatter). They guard against panics,
// hangs and round-trip drift on arbitrary input.
//
// Назначение: грузить байты в FileSet и прогонять их через лексер, парсер
// и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
