package logger

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func TestLogger_Middleware(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	_, api := humatest.New(t)
	api.UseMiddleware(New(log).Middleware())

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(context.Context, *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.OK = true
		return out, nil
	})
	huma.Register(api, huma.Operation{
		OperationID: "missing",
		Method:      http.MethodGet,
		Path:        "/missing",
	}, func(context.Context, *struct{}) (*struct{}, error) {
		return nil, huma.Error404NotFound("not here")
	})

	resp := api.Get("/ping")
	assert.Equal(t, http.StatusOK, resp.Code)
	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"operation":"ping"`)
	assert.Contains(t, out, `"component":"http_logger"`)

	buf.Reset()
	resp = api.Get("/missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	out = buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":404`)
}
