package content

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"contenthub/internal/domain/content"
)

var (
	addType     string
	addTool     string
	addURL      string
	addTags     []string
	addFavorite bool
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Добавить элемент",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := session(cmd)
		if err != nil {
			return err
		}

		n := content.NewItem{
			Name:       args[0],
			Type:       content.Type(addType),
			IsFavorite: addFavorite,
			Tags:       addTags,
		}
		if addTool != "" {
			id, err := uuid.Parse(addTool)
			if err != nil {
				return fmt.Errorf("некорректный id инструмента: %w", err)
			}
			n.ToolID = &id
		}
		if addURL != "" {
			n.FileURL = &addURL
		}

		item, err := rt.App.AddContent(cmd.Context(), n)
		if err != nil {
			return fmt.Errorf("ошибка добавления: %w", err)
		}
		if rt.JSON {
			return rt.PrintJSON(item)
		}
		rt.Success("Добавлено: %s (%s)", item.Name, item.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", string(content.TypeText), "тип элемента")
	addCmd.Flags().StringVar(&addTool, "tool", "", "id инструмента")
	addCmd.Flags().StringVar(&addURL, "url", "", "ссылка на файл")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "теги через запятую")
	addCmd.Flags().BoolVarP(&addFavorite, "favorite", "f", false, "сразу в избранное")
}
