// Package content - библиотека созданных материалов.
package content

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"contenthub/cmd/client/cmd/types"
	"contenthub/internal/app/client/collection"
)

var ContentCmd = &cobra.Command{
	Use:     "content",
	Aliases: []string{"library"},
	Short:   "Библиотека контента",
}

// session проверяет вход и загружает библиотеку для команд над элементами.
func session(cmd *cobra.Command) (*types.Runtime, error) {
	rt, err := types.FromCmd(cmd)
	if err != nil {
		return nil, err
	}
	if err := rt.RequireSession(); err != nil {
		return nil, err
	}
	if err := rt.App.Content.Load(cmd.Context(), collection.DefaultLimit); err != nil {
		return nil, fmt.Errorf("ошибка загрузки библиотеки: %w", err)
	}
	return rt, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("некорректный id: %w", err)
	}
	return id, nil
}

func init() {
	ContentCmd.AddCommand(listCmd, addCmd, favoriteCmd, renameCmd, tagCmd, deleteCmd)
}
