package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/internal/export"
)

// ExportCmd implements the hibi export command.
type ExportCmd struct {
	flags *Flags

	date    string
	all     bool
	format  string
	output  string
	copy    bool
	preview bool
}

// NewExportCmd creates a new export command.
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application.
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export tasks as CSV or Markdown",
		UsageText: "hibi export [--date <YYYY-MM-DD> | --all] [--format csv|md] [-o <file>] [--copy] [--preview]",
		Description: `Renders tasks for a single day (default: today) or the whole
store as a CSV or Markdown table. Output goes to stdout unless
-o, --copy, or --preview redirect it.

Examples:
  hibi export
  hibi export --all --format md -o tasks.md
  hibi export --format md --preview
  hibi export --copy`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "date",
				Aliases:     []string{"d"},
				Usage:       "export tasks for this day (YYYY-MM-DD)",
				Destination: &cmd.date,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "export every task regardless of day",
				Destination: &cmd.all,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format: csv or md",
				Value:       "csv",
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to file instead of stdout",
				Destination: &cmd.output,
			},
			&cli.BoolFlag{
				Name:        "copy",
				Usage:       "copy the rendered output to the clipboard",
				Destination: &cmd.copy,
			},
			&cli.BoolFlag{
				Name:        "preview",
				Usage:       "render Markdown output in the terminal",
				Destination: &cmd.preview,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	svc := cmd.flags.Service

	format := export.Format(cmd.format)
	if !format.IsValid() {
		return fmt.Errorf("unknown format %q (want csv or md)", cmd.format)
	}
	if cmd.preview && format != export.FormatMarkdown {
		return fmt.Errorf("--preview requires --format md")
	}

	var tasks []task.Task
	if cmd.all {
		tasks = svc.All()
	} else {
		day, err := parseDayFlag(cmd.date, task.DayOf(svc.Now()))
		if err != nil {
			return err
		}
		tasks = svc.TasksForDate(day)
	}

	out, err := export.Render(tasks, format)
	if err != nil {
		return err
	}

	if cmd.output != "" {
		if err := os.WriteFile(cmd.output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(c.Root().Writer, "wrote %d tasks to %s\n", len(tasks), cmd.output)
		return nil
	}

	if cmd.copy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(c.Root().Writer, "copied %d tasks to clipboard\n", len(tasks))
		return nil
	}

	if cmd.preview {
		rendered, err := glamour.Render(out, "dark")
		if err != nil {
			return fmt.Errorf("render preview: %w", err)
		}
		fmt.Fprint(c.Root().Writer, rendered)
		return nil
	}

	fmt.Fprint(c.Root().Writer, out)
	return nil
}
