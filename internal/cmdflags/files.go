// Package cmdflags holds the cli flags shared by more than one command.
package cmdflags

import (
	"github.com/urfave/cli/v2"
)

func Bind(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "bind",
		Usage:       "Address to bind and serve the application",
		Destination: out,
		Value:       *out,
	}
}

func StudentsFile(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "students-file",
		Aliases:     []string{"s"},
		Usage:       "Path to the student record file",
		Destination: out,
		Value:       *out,
	}
}

func UsersFile(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "users-file",
		Aliases:     []string{"u"},
		Usage:       "Path to the credential file",
		Destination: out,
		Value:       *out,
	}
}
