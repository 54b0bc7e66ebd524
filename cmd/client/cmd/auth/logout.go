package auth

import (
	"github.com/spf13/cobra"

	"contenthub/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти и удалить локальную сессию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}
		if rt.App.Identity.Current() == nil {
			rt.Warn("Вход не выполнен")
			return nil
		}
		if err := rt.App.Identity.SignOut(cmd.Context()); err != nil {
			return err
		}
		rt.Success("Выход выполнен")
		return nil
	},
}
