package tool

import "fmt"

type Status string

const (
	StatusActive      Status = "active"
	StatusBeta        Status = "beta"
	StatusNew         Status = "new"
	StatusMaintenance Status = "maintenance"
)

// Validate реализует интерфейс huma.Validatable.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusBeta, StatusNew, StatusMaintenance:
		return nil
	}
	return fmt.Errorf("%w: unknown tool status %q", ErrInvalidData, s)
}

func (s Status) String() string {
	return string(s)
}

// DisplayName возвращает подпись статуса для карточки инструмента.
func (s Status) DisplayName() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusBeta:
		return "Beta"
	case StatusNew:
		return "New"
	case StatusMaintenance:
		return "Maintenance"
	default:
		return "Unknown"
	}
}
