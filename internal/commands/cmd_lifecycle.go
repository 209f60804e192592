package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// LifecycleCmd implements the timer transition commands: start, pause,
// complete, reset, and rm.
type LifecycleCmd struct {
	flags *Flags
}

// NewLifecycleCmd creates the lifecycle command group.
func NewLifecycleCmd(flags *Flags) *LifecycleCmd {
	return &LifecycleCmd{flags: flags}
}

// Register adds the lifecycle commands to the application.
func (cmd *LifecycleCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "start",
			Usage:     "Start or resume a task's timer",
			UsageText: "hibi start <id>",
			Action:    cmd.transition("start", cmd.flags.serviceStart),
		},
		&cli.Command{
			Name:      "pause",
			Usage:     "Pause an in-progress task",
			UsageText: "hibi pause <id>",
			Action:    cmd.transition("pause", cmd.flags.servicePause),
		},
		&cli.Command{
			Name:      "complete",
			Aliases:   []string{"done"},
			Usage:     "Complete a task",
			UsageText: "hibi complete <id>",
			Action:    cmd.transition("complete", cmd.flags.serviceComplete),
		},
		&cli.Command{
			Name:      "reset",
			Usage:     "Rewind a completed task to pending, zeroing its timer",
			UsageText: "hibi reset <id>",
			Action:    cmd.transition("reset", cmd.flags.serviceReset),
		},
		&cli.Command{
			Name:      "rm",
			Aliases:   []string{"delete"},
			Usage:     "Delete a task",
			UsageText: "hibi rm <id>",
			Action:    cmd.transition("delete", cmd.flags.serviceDelete),
		},
	)

	return app
}

// transition builds an action that resolves the id argument and applies
// the named transition. Undefined transitions report, they don't fail:
// the store treats them as no-ops.
func (cmd *LifecycleCmd) transition(verb string, apply func(string) bool) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ref := c.Args().First()
		if ref == "" {
			return fmt.Errorf("usage: hibi %s <id>", verb)
		}

		t, err := cmd.flags.Service.Resolve(ref)
		if err != nil {
			return err
		}

		if !apply(t.ID) {
			fmt.Fprintf(c.Root().Writer, "%s: nothing to do (status %s)\n", verb, t.Status)
			return nil
		}

		updated, _ := cmd.flags.Service.Get(t.ID)
		if verb == "delete" {
			fmt.Fprintf(c.Root().Writer, "deleted %s\n", t.Title)
			return nil
		}
		fmt.Fprintf(c.Root().Writer, "%s %s (%s, %s)\n",
			verb, t.Title, updated.Status, formatDuration(updated.TotalTime))
		return nil
	}
}

func (f *Flags) serviceStart(id string) bool    { return f.Service.Start(id) }
func (f *Flags) servicePause(id string) bool    { return f.Service.Pause(id) }
func (f *Flags) serviceComplete(id string) bool { return f.Service.Complete(id) }
func (f *Flags) serviceReset(id string) bool    { return f.Service.ResetStatus(id) }
func (f *Flags) serviceDelete(id string) bool   { return f.Service.Delete(id) }
