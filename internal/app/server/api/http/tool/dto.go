package tool

import (
	"contenthub/internal/domain/query"
	"contenthub/internal/domain/tool"
)

type listInput struct {
	Order string `query:"order" enum:"asc,desc" default:"asc" doc:"Порядок по created_at"`
	Limit int    `query:"limit" minimum:"0" maximum:"1000" doc:"0 - без ограничения"`
	Q     string `query:"q" doc:"Поиск по названию, описанию и категории"`
}

func (in *listInput) options() query.Options {
	return query.Options{Order: query.Order(in.Order), Limit: in.Limit}
}

type listOutput struct {
	Body []tool.Tool
}

type findInput struct {
	ID string `path:"id" format:"uuid" doc:"ID инструмента"`
}

type findOutput struct {
	Body *tool.Tool
}
