package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"contenthub/cmd/client/cmd/types"
	"contenthub/internal/app/client/collection"
)

var loginEmail string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в Content Hub",
	Long: `Аутентификация на сервере Content Hub.

Токен сессии сохраняется локально, лента действий и библиотека
загружаются сразу после входа.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := types.FromCmd(cmd)
		if err != nil {
			return err
		}

		email, password, err := promptCredentials(cmd, loginEmail)
		if err != nil {
			return err
		}

		if err := rt.App.Identity.SignIn(cmd.Context(), email, password); err != nil {
			if errors.Is(err, collection.ErrUnauthenticated) {
				return errors.New("неверный email или пароль")
			}
			return fmt.Errorf("ошибка входа: %w", err)
		}

		rt.Success("Вход выполнен: %s", rt.App.Identity.Email())
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "email пользователя")
}
