package users

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/rollbook/rollbook/auth"
	"github.com/rollbook/rollbook/flatfile"
	"github.com/rollbook/rollbook/internal/cmdflags"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	usersFile := "users.csv"
	return &cli.Command{
		Name:  "users",
		Usage: "Manage the credential file",
		Flags: []cli.Flag{
			cmdflags.UsersFile(&usersFile),
		},
		Subcommands: []*cli.Command{
			addCmd(&usersFile),
		},
	}
}

func addCmd(usersFile *string) *cli.Command {
	var username string
	plaintext := false
	return &cli.Command{
		Name:  "add",
		Usage: "Append a user to the credential file (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u", "user"},
				Usage:       "Name of the user to add",
				Destination: &username,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "plaintext",
				Usage:       "Store the password without hashing (demo only)",
				Destination: &plaintext,
			},
		},
		Action: func(ctx *cli.Context) error {
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			if !plaintext {
				var err error
				password, err = auth.HashPassword(password)
				if err != nil {
					return err
				}
			}
			return flatfile.NewTable(*usersFile, nil).Append(ctx.Context, username, password)
		},
	}
}
