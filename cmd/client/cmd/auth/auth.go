// Package auth - вход, регистрация и выход.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Commands возвращает команды верхнего уровня для работы с сессией.
func Commands() []*cobra.Command {
	return []*cobra.Command{LoginCmd, RegisterCmd, LogoutCmd, WhoamiCmd}
}

// promptCredentials спрашивает email и пароль. Пароль читается без эха,
// если ввод - терминал.
func promptCredentials(cmd *cobra.Command, email string) (string, string, error) {
	out := cmd.OutOrStdout()
	src := cmd.InOrStdin()
	in := bufio.NewReader(src)

	if email == "" {
		fmt.Fprint(out, "Email: ")
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", "", fmt.Errorf("ошибка чтения email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return "", "", errors.New("email не может быть пустым")
	}

	fmt.Fprint(out, "Пароль: ")
	password, err := readPassword(src, in)
	fmt.Fprintln(out)
	if err != nil {
		return "", "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	if password == "" {
		return "", "", errors.New("пароль не может быть пустым")
	}
	return email, password, nil
}

func readPassword(src io.Reader, in *bufio.Reader) (string, error) {
	if f, ok := src.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		return string(b), err
	}
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
