package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hibi-cli/hibi/internal/core/styles"
	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/pkg/iojson"
)

// StatsCmd implements the hibi stats command.
type StatsCmd struct {
	flags *Flags

	date string
	week bool
	json bool
}

// NewStatsCmd creates a new stats command.
func NewStatsCmd(flags *Flags) *StatsCmd {
	return &StatsCmd{flags: flags}
}

// Register adds the stats command to the application.
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show time spent by genre",
		UsageText: "hibi stats [--date <YYYY-MM-DD>] [--week] [--json]",
		Description: `Shows a day's completion summary and per-genre totals, or the
sliding 7-day genre totals with --week.

Examples:
  hibi stats
  hibi stats --date 2024-05-01
  hibi stats --week`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "date",
				Aliases:     []string{"d"},
				Usage:       "day to summarize (YYYY-MM-DD)",
				Destination: &cmd.date,
			},
			&cli.BoolFlag{
				Name:        "week",
				Aliases:     []string{"w"},
				Usage:       "aggregate the past 7 days instead of one day",
				Destination: &cmd.week,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit stats as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(ctx context.Context, c *cli.Command) error {
	svc := cmd.flags.Service
	w := c.Root().Writer

	if cmd.week {
		rows := svc.WeeklyStats()
		if cmd.json {
			return iojson.Write(w, rows)
		}
		fmt.Fprintln(w, styles.TitleStyle.Render("Past 7 days"))
		printGenreRows(w, rows)
		return nil
	}

	day, err := parseDayFlag(cmd.date, task.DayOf(svc.Now()))
	if err != nil {
		return err
	}

	stats := svc.Stats(day)
	rows := svc.GenreStats(day)

	if cmd.json {
		return iojson.Write(w, struct {
			Day    task.Day         `json:"day"`
			Stats  task.Stats       `json:"stats"`
			Genres []task.GenreStat `json:"genres"`
		}{day, stats, rows})
	}

	fmt.Fprintln(w, styles.TitleStyle.Render(day.String()))
	fmt.Fprintf(w, "tasks: %d  completed: %d (%.0f%%)  time: %s\n",
		stats.TotalTasks, stats.CompletedTasks, stats.CompletionRate, formatDuration(stats.TotalTime))
	printGenreRows(w, rows)
	return nil
}

func printGenreRows(w io.Writer, rows []task.GenreStat) {
	if len(rows) == 0 {
		fmt.Fprintln(w, styles.MutedStyle.Render("no activity"))
		return
	}

	var max int64 = 1
	for _, r := range rows {
		if r.TotalTime > max {
			max = r.TotalTime
		}
	}

	for _, r := range rows {
		bar := strings.Repeat("█", int(r.TotalTime*20/max))
		fmt.Fprintf(w, "%-16s %8s  %2d task(s)  %s\n",
			r.Genre, formatDuration(r.TotalTime), r.TaskCount, styles.BarStyle.Render(bar))
	}
}
