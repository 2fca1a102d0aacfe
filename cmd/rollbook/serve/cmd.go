package serve

import (
	"time"

	"github.com/rollbook/rollbook/auth"
	authapi "github.com/rollbook/rollbook/auth/api"
	"github.com/rollbook/rollbook/flatfile"
	"github.com/rollbook/rollbook/internal/cmdflags"
	"github.com/rollbook/rollbook/internal/httpserver"
	"github.com/rollbook/rollbook/roster"
	webapi "github.com/rollbook/rollbook/roster/api"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:3000"
	studentsFile := "students.csv"
	usersFile := "users.csv"
	realm := "rollbook"
	plaintext := false
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the rollbook web application",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			cmdflags.StudentsFile(&studentsFile),
			cmdflags.UsersFile(&usersFile),
			&cli.StringFlag{
				Name:        "realm",
				Usage:       "Realm name announced in the authentication challenge",
				Value:       realm,
				Destination: &realm,
			},
			&cli.BoolFlag{
				Name:        "plaintext",
				Usage:       "Compare passwords without hashing (demo only, use a users file with clear passwords)",
				Value:       plaintext,
				Destination: &plaintext,
			},
		},
		Action: func(ctx *cli.Context) error {
			mode := auth.Hashed
			if plaintext {
				mode = auth.Plaintext
			}
			tokens := auth.InMemoryTokenStore(10 * time.Minute)
			authorizer := auth.NewAuthorizer(flatfile.NewTable(usersFile, nil), mode)
			handler, err := webapi.AsHandler(roster.Open(studentsFile, nil), tokens)
			if err != nil {
				return err
			}
			guard := authapi.NewRealm(authorizer, tokens, realm)
			return httpserver.Serve(ctx.Context, bindAddr, guard.Protect(handler))
		},
	}
}
