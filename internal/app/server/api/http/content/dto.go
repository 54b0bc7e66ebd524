package content

import (
	"github.com/google/uuid"

	"contenthub/internal/domain/content"
	"contenthub/internal/domain/query"
)

type listInput struct {
	Order    string `query:"order" enum:"asc,desc" default:"desc" doc:"Порядок по created_at"`
	Limit    int    `query:"limit" minimum:"0" maximum:"1000" doc:"0 - без ограничения"`
	Type     string `query:"type" doc:"text, image, video, audio, code или data"`
	Favorite bool   `query:"favorite" doc:"Только избранное"`
	Tag      string `query:"tag" doc:"Только элементы с тегом"`
}

func (in *listInput) filter() (content.Filter, error) {
	f := content.Filter{
		Options:       query.Options{Order: query.Order(in.Order), Limit: in.Limit},
		FavoritesOnly: in.Favorite,
		Tag:           in.Tag,
	}
	if in.Type != "" {
		typ := content.Type(in.Type)
		if err := typ.Validate(); err != nil {
			return f, err
		}
		f.Type = &typ
	}
	return f, nil
}

type listOutput struct {
	Body []content.Item
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	ToolID     *uuid.UUID     `json:"tool_id,omitempty"`
	Name       string         `json:"name" minLength:"1" maxLength:"500"`
	Type       content.Type   `json:"type" enum:"text,image,video,audio,code,data"`
	FileURL    *string        `json:"file_url,omitempty" format:"uri"`
	FileSize   *int64         `json:"file_size,omitempty" minimum:"0"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IsFavorite bool           `json:"is_favorite,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
}

func (r createRequest) toDomain() content.NewItem {
	return content.NewItem{
		ToolID:     r.ToolID,
		Name:       r.Name,
		Type:       r.Type,
		FileURL:    r.FileURL,
		FileSize:   r.FileSize,
		Metadata:   r.Metadata,
		IsFavorite: r.IsFavorite,
		Tags:       r.Tags,
	}
}

type itemOutput struct {
	Body *content.Item
}

type updateInput struct {
	ID   string `path:"id" format:"uuid" doc:"ID элемента"`
	Body content.Patch
}

type deleteInput struct {
	ID string `path:"id" format:"uuid" doc:"ID элемента"`
}
