// Package tools - просмотр каталога инструментов.
package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"contenthub/cmd/client/cmd/types"
	"contenthub/internal/app/client/collection"
	"contenthub/internal/domain/tool"
)

var search string

var ToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Каталог инструментов",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список публичных инструментов",
	Long:  `Загружает каталог (вход не требуется). --search фильтрует по названию, описанию и категории.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}
		if err := rt.App.Tools.Load(cmd.Context(), collection.DefaultLimit); err != nil {
			return fmt.Errorf("ошибка загрузки каталога: %w", err)
		}

		found := rt.App.SearchTools(search)
		if rt.JSON {
			return rt.PrintJSON(found)
		}
		if len(found) == 0 {
			fmt.Fprintln(rt.Out, "Инструменты не найдены")
			return nil
		}

		w := rt.Table()
		fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tКАТЕГОРИЯ\tСТАТУС")
		for _, t := range found {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Category, statusLabel(t.Status))
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Подробности инструмента",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("некорректный id: %w", err)
		}
		if err := rt.App.Tools.Load(cmd.Context(), collection.DefaultLimit); err != nil {
			return fmt.Errorf("ошибка загрузки каталога: %w", err)
		}

		t, ok := rt.App.Tools.ByID(id)
		if !ok {
			return errors.New("инструмент не найден")
		}
		if rt.JSON {
			return rt.PrintJSON(t)
		}

		fmt.Fprintf(rt.Out, "%s %s\n", t.Icon, color.New(color.Bold).Sprint(t.Title))
		fmt.Fprintf(rt.Out, "Статус:    %s\n", statusLabel(t.Status))
		if t.Category != "" {
			fmt.Fprintf(rt.Out, "Категория: %s\n", t.Category)
		}
		if t.Description != "" {
			fmt.Fprintf(rt.Out, "\n%s\n", t.Description)
		}
		if len(t.Config) > 0 {
			keys := make([]string, 0, len(t.Config))
			for k := range t.Config {
				keys = append(keys, k)
			}
			fmt.Fprintf(rt.Out, "\nПараметры: %s\n", strings.Join(keys, ", "))
		}
		return nil
	},
}

func statusLabel(s tool.Status) string {
	switch s {
	case tool.StatusActive:
		return color.GreenString(s.DisplayName())
	case tool.StatusBeta, tool.StatusNew:
		return color.CyanString(s.DisplayName())
	case tool.StatusMaintenance:
		return color.YellowString(s.DisplayName())
	}
	return s.String()
}

func init() {
	listCmd.Flags().StringVarP(&search, "search", "s", "", "строка поиска")
	ToolsCmd.AddCommand(listCmd, showCmd)
}
