package students

import (
	"fmt"

	"github.com/rollbook/rollbook/internal/cmdflags"
	"github.com/rollbook/rollbook/roster"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	studentsFile := "students.csv"
	return &cli.Command{
		Name:  "students",
		Usage: "Inspect or extend the student file without going through the web UI",
		Flags: []cli.Flag{
			cmdflags.StudentsFile(&studentsFile),
		},
		Subcommands: []*cli.Command{
			listCmd(&studentsFile),
			addCmd(&studentsFile),
		},
	}
}

func listCmd(studentsFile *string) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print every student in file order",
		Action: func(ctx *cli.Context) error {
			students, err := roster.Open(*studentsFile, nil).List(ctx.Context)
			if err != nil {
				return err
			}
			for i, s := range students {
				fmt.Printf("%v\t%v\t%v\n", i, s.Name, s.School)
			}
			return nil
		},
	}
}

func addCmd(studentsFile *string) *cli.Command {
	var name, school string
	return &cli.Command{
		Name:  "add",
		Usage: "Append one student to the file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "Student name",
				Destination: &name,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "school",
				Usage:       "School the student belongs to",
				Destination: &school,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			return roster.Open(*studentsFile, nil).Add(ctx.Context, roster.Student{Name: name, School: school})
		},
	}
}
