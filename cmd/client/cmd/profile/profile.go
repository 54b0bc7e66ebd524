// Package profile - профиль и расход кредитов.
package profile

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"contenthub/cmd/client/cmd/types"
	domain "contenthub/internal/domain/profile"
)

var (
	username  string
	fullName  string
	avatarURL string
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Профиль пользователя",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать профиль и расход кредитов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}
		if err := rt.RequireSession(); err != nil {
			return err
		}
		if err := rt.App.Identity.RefreshProfile(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка загрузки профиля: %w", err)
		}

		p := rt.App.Identity.Profile()
		if rt.JSON {
			return rt.PrintJSON(p)
		}
		printProfile(rt, p)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Изменить имя пользователя, полное имя или аватар",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}
		if err := rt.RequireSession(); err != nil {
			return err
		}

		var patch domain.Patch
		flags := cmd.Flags()
		if flags.Changed("username") {
			patch.Username = &username
		}
		if flags.Changed("name") {
			patch.FullName = &fullName
		}
		if flags.Changed("avatar") {
			patch.AvatarURL = &avatarURL
		}
		if patch.IsEmpty() {
			return errors.New("укажите хотя бы один из флагов --username, --name, --avatar")
		}

		p, err := rt.App.Identity.UpdateProfile(cmd.Context(), patch)
		if err != nil {
			return fmt.Errorf("ошибка обновления профиля: %w", err)
		}
		if rt.JSON {
			return rt.PrintJSON(p)
		}
		rt.Success("Профиль обновлен")
		printProfile(rt, &p)
		return nil
	},
}

func printProfile(rt *types.Runtime, p *domain.Profile) {
	if p == nil {
		rt.Warn("Профиль недоступен")
		return
	}
	fmt.Fprintf(rt.Out, "%s\n", color.New(color.Bold).Sprint(p.DisplayName()))
	if p.Username != nil {
		fmt.Fprintf(rt.Out, "@%s\n", *p.Username)
	}
	fmt.Fprintf(rt.Out, "Тариф:   %s\n", p.PlanDisplay())

	usage := fmt.Sprintf("%d/%d (%d%%)", p.CreditsUsed, p.CreditsLimit, p.UsagePercent())
	switch pct := p.UsagePercent(); {
	case pct >= 90:
		usage = color.RedString(usage)
	case pct >= 70:
		usage = color.YellowString(usage)
	}
	fmt.Fprintf(rt.Out, "Кредиты: %s\n", usage)
}

func init() {
	updateCmd.Flags().StringVar(&username, "username", "", "имя пользователя")
	updateCmd.Flags().StringVar(&fullName, "name", "", "полное имя")
	updateCmd.Flags().StringVar(&avatarURL, "avatar", "", "ссылка на аватар")
	ProfileCmd.AddCommand(showCmd, updateCmd)
}
