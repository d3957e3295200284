// Package format renders a parsed textproto tree back to canonical text.
//
// Назначение: `txtpb fmt` и проверка round-trip (parse → render → parse).
// Канонический вид: одно поле на строку, отступ IndentWidth пробелов,
// строки в двойных кавычках, разделители полей опускаются, комментарии
// перед полями и перед закрывающими скобками сохраняются.
// Не делает: IO и сохранение исходного расположения пробелов.
package format
