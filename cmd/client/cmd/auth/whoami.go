package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"contenthub/cmd/client/cmd/types"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}
		if err := rt.RequireSession(); err != nil {
			return err
		}

		id := rt.App.Identity.Current()
		p := rt.App.Identity.Profile()
		if rt.JSON {
			return rt.PrintJSON(map[string]any{
				"user_id": id,
				"email":   rt.App.Identity.Email(),
				"profile": p,
			})
		}

		fmt.Fprintf(rt.Out, "ID:    %s\n", id)
		fmt.Fprintf(rt.Out, "Email: %s\n", rt.App.Identity.Email())
		if p != nil {
			fmt.Fprintf(rt.Out, "Имя:   %s\n", p.DisplayName())
			fmt.Fprintf(rt.Out, "Тариф: %s, кредиты %d/%d (%d%%)\n",
				p.PlanDisplay(), p.CreditsUsed, p.CreditsLimit, p.UsagePercent())
		}
		return nil
	},
}
