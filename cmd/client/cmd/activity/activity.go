// Package activity - лента действий пользователя.
package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"contenthub/cmd/client/cmd/types"
)

var (
	listLimit  int
	logTool    string
	logDetails string
	logCredits int
)

var ActivityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Лента действий",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Последние действия, новые сверху",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}
		if err := rt.RequireSession(); err != nil {
			return err
		}
		if err := rt.App.Activities.Load(cmd.Context(), listLimit); err != nil {
			return fmt.Errorf("ошибка загрузки ленты: %w", err)
		}

		items := rt.App.Activities.Items()
		if rt.JSON {
			return rt.PrintJSON(items)
		}
		if len(items) == 0 {
			fmt.Fprintln(rt.Out, "Действий пока нет")
			return nil
		}

		w := rt.Table()
		fmt.Fprintln(w, "ВРЕМЯ\tДЕЙСТВИЕ\tКРЕДИТЫ\tИНСТРУМЕНТ")
		for _, a := range items {
			toolName := "-"
			if a.ToolID != nil {
				toolName = a.ToolID.String()
				if t, ok := rt.App.Tools.ByID(*a.ToolID); ok {
					toolName = t.Title
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				a.CreatedAt.Local().Format(time.DateTime), a.Action, a.CreditsUsed, toolName)
		}
		return w.Flush()
	},
}

var logCmd = &cobra.Command{
	Use:   "log <action>",
	Short: "Записать действие",
	Long: `Добавляет действие в ленту. При --credits > 0 кредиты списываются
с профиля один раз.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}
		if err := rt.RequireSession(); err != nil {
			return err
		}

		var toolID *uuid.UUID
		if logTool != "" {
			id, err := uuid.Parse(logTool)
			if err != nil {
				return fmt.Errorf("некорректный id инструмента: %w", err)
			}
			toolID = &id
		}

		var details map[string]any
		if logDetails != "" {
			if err := json.Unmarshal([]byte(logDetails), &details); err != nil {
				return fmt.Errorf("details должен быть JSON-объектом: %w", err)
			}
		}

		a, err := rt.App.LogActivity(cmd.Context(), args[0], toolID, details, logCredits)
		if err != nil {
			return fmt.Errorf("ошибка записи действия: %w", err)
		}
		if rt.JSON {
			return rt.PrintJSON(a)
		}
		rt.Success("Действие записано: %s", a.ID)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "сколько записей загрузить (0 - по умолчанию, -1 - все)")
	logCmd.Flags().StringVar(&logTool, "tool", "", "id инструмента")
	logCmd.Flags().StringVar(&logDetails, "details", "", "подробности в JSON")
	logCmd.Flags().IntVar(&logCredits, "credits", 0, "израсходованные кредиты")
	ActivityCmd.AddCommand(listCmd, logCmd)
}
