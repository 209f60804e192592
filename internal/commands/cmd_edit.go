package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/internal/hibi"
)

// EditCmd implements the hibi edit command, covering both planning
// edits and manual corrections of the timing record.
type EditCmd struct {
	flags *Flags

	title       string
	genre       string
	start       string
	duration    int
	memo        string
	date        string
	startedAt   string
	completedAt string
	totalTime   int
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit a task's fields",
		UsageText: "hibi edit <id> [options]",
		Description: `Patches task fields. Timing flags are manual corrections: they skip
the state machine but must leave the record consistent (a completion
before the start, or negative times, are rejected and nothing changes).

Examples:
  hibi edit 3f2a --title "Retouch wedding shoot" --memo "client rush"
  hibi edit 3f2a --date 2024-05-03
  hibi edit 3f2a --total-time 3600 --started-at 2024-05-01T09:00:00Z`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "new title", Destination: &cmd.title},
			&cli.StringFlag{Name: "genre", Aliases: []string{"g"}, Usage: "new genre", Destination: &cmd.genre},
			&cli.StringFlag{Name: "at", Usage: "planned start time (HH:MM)", Destination: &cmd.start},
			&cli.IntFlag{Name: "for", Usage: "planned duration in minutes", Destination: &cmd.duration},
			&cli.StringFlag{Name: "memo", Aliases: []string{"m"}, Usage: "new memo", Destination: &cmd.memo},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "move the task to a day (YYYY-MM-DD)", Destination: &cmd.date},
			&cli.StringFlag{Name: "started-at", Usage: "correct the start instant (RFC 3339)", Destination: &cmd.startedAt},
			&cli.StringFlag{Name: "completed-at", Usage: "correct the completion instant (RFC 3339)", Destination: &cmd.completedAt},
			&cli.IntFlag{Name: "total-time", Usage: "correct accrued seconds", Destination: &cmd.totalTime},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	ref := c.Args().First()
	if ref == "" {
		return fmt.Errorf("usage: hibi edit <id> [options]")
	}

	t, err := cmd.flags.Service.Resolve(ref)
	if err != nil {
		return err
	}

	patch, err := cmd.buildPatch(c)
	if err != nil {
		return err
	}

	if err := cmd.flags.Service.Update(t.ID, patch); err != nil {
		return fmt.Errorf("edit task: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "updated %s\n", shortID(t.ID))
	return nil
}

func (cmd *EditCmd) buildPatch(c *cli.Command) (hibi.Patch, error) {
	var p hibi.Patch

	if c.IsSet("title") {
		p.Title = &cmd.title
	}
	if c.IsSet("genre") {
		p.Genre = &cmd.genre
	}
	if c.IsSet("at") {
		p.ScheduledStart = &cmd.start
	}
	if c.IsSet("for") {
		mins := cmd.duration
		p.ScheduledMins = &mins
	}
	if c.IsSet("memo") {
		p.Memo = &cmd.memo
	}
	if c.IsSet("date") {
		day, err := task.ParseDay(cmd.date)
		if err != nil {
			return p, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", cmd.date)
		}
		p.Day = &day
	}
	if c.IsSet("started-at") {
		ts, err := time.Parse(time.RFC3339, cmd.startedAt)
		if err != nil {
			return p, fmt.Errorf("invalid started-at %q (want RFC 3339)", cmd.startedAt)
		}
		p.StartedAt = &ts
	}
	if c.IsSet("completed-at") {
		ts, err := time.Parse(time.RFC3339, cmd.completedAt)
		if err != nil {
			return p, fmt.Errorf("invalid completed-at %q (want RFC 3339)", cmd.completedAt)
		}
		p.CompletedAt = &ts
	}
	if c.IsSet("total-time") {
		secs := int64(cmd.totalTime)
		p.TotalTime = &secs
	}

	return p, nil
}
