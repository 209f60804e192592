package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/internal/hibi"
)

// AddCmd implements the hibi add command.
type AddCmd struct {
	flags *Flags

	title    string
	genre    string
	start    string
	duration int
	memo     string
	date     string
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "hibi add [--title <title>] [options]",
		Description: `Adds a task to a day's plan.

Run without --title to fill the fields in an interactive form.

Examples:
  hibi add --title "Retouch shoot" --genre "Photo Editing" --at 09:00 --for 60
  hibi add --title "Water plants" --genre Routine --date 2024-05-03
  hibi add`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "task title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "genre",
				Aliases:     []string{"g"},
				Usage:       "genre label (novel genres are registered automatically)",
				Destination: &cmd.genre,
			},
			&cli.StringFlag{
				Name:        "at",
				Usage:       "planned start time (HH:MM)",
				Destination: &cmd.start,
			},
			&cli.IntFlag{
				Name:        "for",
				Usage:       "planned duration in minutes",
				Destination: &cmd.duration,
			},
			&cli.StringFlag{
				Name:        "memo",
				Aliases:     []string{"m"},
				Usage:       "free-form memo",
				Destination: &cmd.memo,
			},
			&cli.StringFlag{
				Name:        "date",
				Aliases:     []string{"d"},
				Usage:       "day to schedule the task on (YYYY-MM-DD, defaults to today)",
				Destination: &cmd.date,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.title == "" {
		if err := cmd.prompt(); err != nil {
			return err
		}
	}

	var day task.Day
	if cmd.date != "" {
		parsed, err := task.ParseDay(cmd.date)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", cmd.date)
		}
		day = parsed
	}

	added, err := cmd.flags.Service.Add(hibi.AddInput{
		Title:          cmd.title,
		Genre:          cmd.genre,
		ScheduledStart: cmd.start,
		ScheduledMins:  cmd.duration,
		Memo:           cmd.memo,
		Day:            day,
	})
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "added %s (%s)\n", added.Title, shortID(added.ID))
	return nil
}

// prompt collects the task fields interactively.
func (cmd *AddCmd) prompt() error {
	genres := cmd.flags.Service.Genres()
	options := make([]huh.Option[string], 0, len(genres)+1)
	for _, g := range genres {
		options = append(options, huh.NewOption(g, g))
	}
	options = append(options, huh.NewOption("Other...", ""))

	var durationStr string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&cmd.title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Genre").
				Options(options...).
				Value(&cmd.genre),
			huh.NewInput().
				Title("Planned start (HH:MM, optional)").
				Value(&cmd.start),
			huh.NewInput().
				Title("Planned minutes (optional)").
				Value(&durationStr).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("enter a non-negative number")
					}
					return nil
				}),
			huh.NewText().
				Title("Memo (optional)").
				Value(&cmd.memo),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// "Other..." selected: ask for the new genre name.
	if cmd.genre == "" {
		newGenre := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("New genre").
				Value(&cmd.genre),
		))
		if err := newGenre.Run(); err != nil {
			return err
		}
	}

	if durationStr != "" {
		cmd.duration, _ = strconv.Atoi(durationStr)
	}
	return nil
}

// shortID truncates task ids for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
