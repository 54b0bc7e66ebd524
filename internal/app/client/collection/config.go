package collection

import "contenthub/internal/domain/query"

type Scope int

const (
	// ScopePublic - записи видны всем, загрузка не требует сессии.
	ScopePublic Scope = iota
	// ScopeOwner - записи принадлежат пользователю сессии.
	ScopeOwner
)

func (s Scope) String() string {
	if s == ScopeOwner {
		return "owner"
	}
	return "public"
}

// Config описывает одну коллекцию.
type Config struct {
	// Table - имя удаленной таблицы, используется в логах и ошибках.
	Table string
	Order query.Order
	Scope Scope
	// DefaultLimit применяется, когда Load вызван с limit == 0. 0 - без ограничения.
	DefaultLimit int
	// ReadOnly запрещает Create, Update и Delete без обращения к хранилищу.
	ReadOnly bool
}

// Limit для Load: значение по умолчанию и явный отказ от ограничения.
const (
	DefaultLimit = 0
	NoLimit      = -1
)
