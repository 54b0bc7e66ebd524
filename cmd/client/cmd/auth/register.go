package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"contenthub/cmd/client/cmd/types"
)

var registerEmail string

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Создать аккаунт",
	Long:  `Регистрация нового пользователя. После регистрации вход выполняется автоматически.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}

		email, password, err := promptCredentials(cmd, registerEmail)
		if err != nil {
			return err
		}

		if err := rt.App.Identity.SignUp(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		rt.Success("Аккаунт создан: %s", rt.App.Identity.Email())
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "email пользователя")
}
