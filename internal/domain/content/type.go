package content

import "fmt"

type Type string

const (
	TypeText  Type = "text"
	TypeImage Type = "image"
	TypeVideo Type = "video"
	TypeAudio Type = "audio"
	TypeCode  Type = "code"
	TypeData  Type = "data"
)

// Types перечисляет допустимые типы в порядке отображения.
var Types = []Type{TypeText, TypeImage, TypeVideo, TypeAudio, TypeCode, TypeData}

// Validate реализует интерфейс huma.Validatable.
func (t Type) Validate() error {
	switch t {
	case TypeText, TypeImage, TypeVideo, TypeAudio, TypeCode, TypeData:
		return nil
	}
	return fmt.Errorf("%w: unknown content type %q", ErrInvalidData, t)
}

func (t Type) String() string {
	return string(t)
}
