package tool

import "strings"

// Search фильтрует инструменты по подстроке в title, description и category
// без учета регистра. Пустой запрос возвращает исходный список.
func Search(tools []Tool, q string) []Tool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return tools
	}

	out := make([]Tool, 0, len(tools))
	for _, t := range tools {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}
