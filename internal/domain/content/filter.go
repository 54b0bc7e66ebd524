package content

import "contenthub/internal/domain/query"

// Filter - условия выборки библиотеки. Нулевое значение выбирает все.
type Filter struct {
	query.Options
	Type          *Type
	FavoritesOnly bool
	Tag           string
}

// Match проверяет элемент локально, теми же правилами, что и хранилище.
func (f Filter) Match(i Item) bool {
	if f.Type != nil && i.Type != *f.Type {
		return false
	}
	if f.FavoritesOnly && !i.IsFavorite {
		return false
	}
	if f.Tag != "" && !i.HasTag(f.Tag) {
		return false
	}
	return true
}

// Apply возвращает подходящие элементы, сохраняя порядок.
func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, i := range items {
		if f.Match(i) {
			out = append(out, i)
		}
	}
	return out
}
