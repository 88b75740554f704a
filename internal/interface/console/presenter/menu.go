package presenter

import (
	"strconv"
	"strings"
)

// MenuSeparator печатается перед меню журнала студентов.
const MenuSeparator = "--------------------------------"

// MenuEntry - один пункт меню.
type MenuEntry struct {
	Option int
	Label  string
}

// RenderMenu возвращает строки меню: заголовок (если задан) и пункты
// в виде "N. Label". Каждая строка завершается переводом строки.
func RenderMenu(header string, entries []MenuEntry) string {
	var sb strings.Builder
	if header != "" {
		sb.WriteString(header)
		sb.WriteByte('\n')
	}
	for _, e := range entries {
		sb.WriteString(strconv.Itoa(e.Option))
		sb.WriteString(". ")
		sb.WriteString(e.Label)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Общие сообщения цикла меню.
const (
	OptionPrompt  = "Enter an option: "
	InvalidOption = "Invalid option. Please enter a number."
)
