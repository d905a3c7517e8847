package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"Food-Inventory/domain"
	"Food-Inventory/pkg/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAddUserCommand(opts *rootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "adduser",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" {
				return errors.New("missing required flag: --username")
			}

			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				var err error
				password, err = readPassword(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if strings.TrimSpace(password) == "" {
				return errors.New("password cannot be empty")
			}

			env, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer env.close()

			service := user.NewUserService(user.NewUserRepository(env.db), env.cfg.BcryptCost)
			res, err := service.Register(cmd.Context(), domain.RegisterRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User %s created successfully with ID %d\n", res.Username, res.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// piped input
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
