package content

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"contenthub/internal/app/client/collection"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Добавить в избранное или убрать из него",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := session(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		item, err := rt.App.ToggleFavorite(cmd.Context(), id)
		if errors.Is(err, collection.ErrNotFound) {
			return errors.New("элемент не найден")
		}
		if err != nil {
			return fmt.Errorf("ошибка обновления: %w", err)
		}

		if item.IsFavorite {
			rt.Success("%s в избранном", item.Name)
		} else {
			rt.Success("%s убран из избранного", item.Name)
		}
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Переименовать элемент",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := session(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		item, err := rt.App.RenameContent(cmd.Context(), id, args[1])
		if errors.Is(err, collection.ErrNotFound) {
			return errors.New("элемент не найден")
		}
		if err != nil {
			return fmt.Errorf("ошибка переименования: %w", err)
		}
		rt.Success("Новое название: %s", item.Name)
		return nil
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag <id> [tag...]",
	Short: "Заменить теги элемента",
	Long:  `Без тегов после id все теги элемента удаляются.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := session(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		item, err := rt.App.TagContent(cmd.Context(), id, args[1:])
		if errors.Is(err, collection.ErrNotFound) {
			return errors.New("элемент не найден")
		}
		if err != nil {
			return fmt.Errorf("ошибка обновления тегов: %w", err)
		}
		rt.Success("Теги %s: %v", item.Name, item.Tags)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Удалить элемент",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := session(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.App.Content.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("ошибка удаления: %w", err)
		}
		rt.Success("Удалено")
		return nil
	},
}
