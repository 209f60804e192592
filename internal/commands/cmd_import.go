package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hibi-cli/hibi/internal/importer"
)

// ImportCmd implements the hibi import command.
type ImportCmd struct {
	flags *Flags
}

// NewImportCmd creates a new import command.
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{flags: flags}
}

// Register adds the import command to the application.
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Bulk-create tasks from a YAML file",
		UsageText: "hibi import <file>",
		Description: `Reads a YAML document and creates one task per entry.

The expected shape:

  tasks:
    - title: Morning run
      genre: Routine
      start: "07:00"
      duration: 30
      date: 2026-09-01

Entries without a date land on today. Import stops at the first
invalid entry; tasks created before that point are kept.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}

	path := c.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	count, err := importer.Import(cmd.flags.Service, data)
	if count > 0 {
		fmt.Fprintf(c.Root().Writer, "imported %d tasks\n", count)
	}
	if err != nil {
		return err
	}
	return nil
}
