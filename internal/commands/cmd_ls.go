package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hibi-cli/hibi/internal/core/styles"
	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/pkg/iojson"
)

// LsCmd implements the hibi ls command.
type LsCmd struct {
	flags *Flags

	date string
	all  bool
	json bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "hibi ls [--date <YYYY-MM-DD>] [--all] [--json]",
		Description: `Lists tasks for a day (today by default).

Examples:
  hibi ls
  hibi ls --date 2024-05-01
  hibi ls --all --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "date",
				Aliases:     []string{"d"},
				Usage:       "day to list (YYYY-MM-DD)",
				Destination: &cmd.date,
			},
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "list every task regardless of day",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit tasks as JSON lines",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	svc := cmd.flags.Service

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

	if cmd.json {
		for _, t := range tasks {
			if err := iojson.WriteLine(c.Root().Writer, t); err != nil {
				return err
			}
		}
		return nil
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.Root().Writer, styles.MutedStyle.Render("no tasks"))
		return nil
	}

	w := c.Root().Writer
	for _, t := range tasks {
		marker := " "
		if t.CarriedOver {
			marker = "*"
		}
		schedule := ""
		if t.ScheduledStart != "" {
			schedule = fmt.Sprintf(" %s-%s", t.ScheduledStart, t.ScheduledEnd())
		}
		fmt.Fprintf(w, "%s %s%s  %-12s %s  %s  %s\n",
			styles.MutedStyle.Render(shortID(t.ID)),
			marker,
			schedule,
			statusStyle(t.Status)(string(t.Status)),
			t.Title,
			styles.MutedStyle.Render(t.Genre),
			styles.TimerStyle.Render(formatDuration(svc.Elapsed(t.ID))),
		)
	}

	return nil
}
