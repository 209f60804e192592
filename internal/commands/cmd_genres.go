package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hibi-cli/hibi/internal/core/styles"
)

// GenresCmd implements the hibi genres command.
type GenresCmd struct {
	flags *Flags

	add string
}

// NewGenresCmd creates a new genres command.
func NewGenresCmd(flags *Flags) *GenresCmd {
	return &GenresCmd{flags: flags}
}

// Register adds the genres command to the application.
func (cmd *GenresCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "genres",
		Usage:     "List or register genres",
		UsageText: "hibi genres [--add <name>]",
		Description: `Lists the genre registry: configured defaults first, then custom
genres in the order they were first seen. The registry only grows;
there is no removal.

Examples:
  hibi genres
  hibi genres --add Gardening`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "add",
				Aliases:     []string{"a"},
				Usage:       "register a custom genre",
				Destination: &cmd.add,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *GenresCmd) run(ctx context.Context, c *cli.Command) error {
	svc := cmd.flags.Service
	w := c.Root().Writer

	if cmd.add != "" {
		if svc.AddGenre(cmd.add) {
			fmt.Fprintf(w, "registered %s\n", cmd.add)
		} else {
			fmt.Fprintf(w, "%s is already registered\n", cmd.add)
		}
		return nil
	}

	defaults := make(map[string]bool, len(cmd.flags.Config.DefaultGenres))
	for _, g := range cmd.flags.Config.DefaultGenres {
		defaults[g] = true
	}

	for _, g := range svc.Genres() {
		if defaults[g] {
			fmt.Fprintln(w, g)
		} else {
			fmt.Fprintf(w, "%s %s\n", g, styles.MutedStyle.Render("(custom)"))
		}
	}
	return nil
}
