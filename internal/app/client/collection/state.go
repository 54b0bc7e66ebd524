package collection

import "time"

// State - наблюдаемое состояние синхронизации.
type State struct {
	Loading bool
	// Err - ошибка последней примененной загрузки.
	Err error
	// LoadID - номер последней начатой загрузки.
	LoadID        uint64
	LoadStartedAt time.Time
	LastLoadedAt  time.Time
	// Discarded - сколько результатов загрузок отброшено как устаревшие.
	Discarded int
}

// Stuck сообщает, что загрузка идет дольше d.
func (s State) Stuck(now time.Time, d time.Duration) bool {
	return s.Loading && now.Sub(s.LoadStartedAt) > d
}
