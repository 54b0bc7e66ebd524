package activity

import (
	"github.com/google/uuid"

	"contenthub/internal/domain/activity"
	"contenthub/internal/domain/query"
)

type listInput struct {
	Order string `query:"order" enum:"asc,desc" default:"desc" doc:"Порядок по created_at"`
	Limit int    `query:"limit" minimum:"0" maximum:"1000" doc:"0 - значение по умолчанию (50)"`
}

func (in *listInput) options() query.Options {
	return query.Options{Order: query.Order(in.Order), Limit: in.Limit}
}

type listOutput struct {
	Body []activity.Activity
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	ToolID      *uuid.UUID     `json:"tool_id,omitempty" doc:"Инструмент, которым выполнено действие"`
	Action      string         `json:"action" minLength:"1" maxLength:"200" example:"generate"`
	Details     map[string]any `json:"details,omitempty"`
	CreditsUsed int            `json:"credits_used,omitempty" minimum:"0"`
}

func (r createRequest) toDomain() activity.NewActivity {
	return activity.NewActivity{
		ToolID:      r.ToolID,
		Action:      r.Action,
		Details:     r.Details,
		CreditsUsed: r.CreditsUsed,
	}
}

type createOutput struct {
	Body *activity.Activity
}
