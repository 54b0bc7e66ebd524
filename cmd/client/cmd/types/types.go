// Package types - общее состояние команд клиента.
package types

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"contenthub/internal/app/client"
)

type contextKey struct{}

// Runtime передается подкомандам через контекст корневой команды.
type Runtime struct {
	App  *client.App
	JSON bool
	Out  io.Writer
}

func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, contextKey{}, rt)
}

// FromCmd достает Runtime, установленный в PersistentPreRunE.
func FromCmd(cmd *cobra.Command) (*Runtime, error) {
	rt, ok := cmd.Context().Value(contextKey{}).(*Runtime)
	if !ok || rt == nil || rt.App == nil {
		return nil, errors.New("приложение не инициализировано")
	}
	return rt, nil
}

// RequireSession возвращает ошибку, если пользователь не вошел.
func (r *Runtime) RequireSession() error {
	if r.App.Identity.Current() == nil {
		return errors.New("требуется вход: выполните contenthub login")
	}
	return nil
}

func (r *Runtime) PrintJSON(v any) error {
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Runtime) Success(format string, args ...any) {
	fmt.Fprintln(r.Out, color.GreenString("✓ "+format, args...))
}

func (r *Runtime) Warn(format string, args ...any) {
	fmt.Fprintln(r.Out, color.YellowString("! "+format, args...))
}

func (r *Runtime) Table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.Out, 0, 0, 2, ' ', 0)
}
