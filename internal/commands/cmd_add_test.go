package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hibi-cli/hibi/internal/core/config"
	"github.com/hibi-cli/hibi/internal/hibi"
	"github.com/hibi-cli/hibi/internal/store/jsonfile"
)

func newTestApp(t *testing.T) (*cli.Command, *Flags) {
	t.Helper()
	store := jsonfile.NewStateStore(filepath.Join(t.TempDir(), "state.json"))
	cfg := config.DefaultConfig()
	flags := &Flags{
		Config:  &cfg,
		Service: hibi.NewService(store, &cfg, zerolog.Nop()),
	}

	app := &cli.Command{Name: "hibi", Writer: &bytes.Buffer{}}
	app = NewAddCmd(flags).Register(app)
	app = NewEditCmd(flags).Register(app)
	return app, flags
}

func TestAddCmd_Run(t *testing.T) {
	t.Run("creates a task with schedule fields", func(t *testing.T) {
		app, flags := newTestApp(t)

		err := app.Run(context.Background(), []string{
			"hibi", "add",
			"--title", "Retouch shoot",
			"--genre", "Photo Editing",
			"--at", "09:00",
			"--for", "45",
		})
		require.NoError(t, err)

		all := flags.Service.All()
		require.Len(t, all, 1)
		assert.Equal(t, "Retouch shoot", all[0].Title)
		assert.Equal(t, "09:00", all[0].ScheduledStart)
		assert.Equal(t, 45, all[0].ScheduledMins)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		app, _ := newTestApp(t)

		err := app.Run(context.Background(), []string{
			"hibi", "add", "--title", "x", "--date", "05/02/2024",
		})
		assert.Error(t, err)
	})
}

func TestEditCmd_Run(t *testing.T) {
	t.Run("patches duration and accrued time", func(t *testing.T) {
		app, flags := newTestApp(t)

		added, err := flags.Service.Add(hibi.AddInput{Title: "Deep work", Genre: "Client Work"})
		require.NoError(t, err)

		err = app.Run(context.Background(), []string{
			"hibi", "edit", added.ID, "--for", "90", "--total-time", "3600",
		})
		require.NoError(t, err)

		got, ok := flags.Service.Get(added.ID)
		require.True(t, ok)
		assert.Equal(t, 90, got.ScheduledMins)
		assert.Equal(t, int64(3600), got.TotalTime)
	})

	t.Run("rejects a negative total-time correction", func(t *testing.T) {
		app, flags := newTestApp(t)

		added, err := flags.Service.Add(hibi.AddInput{Title: "Deep work", Genre: "Client Work"})
		require.NoError(t, err)

		err = app.Run(context.Background(), []string{
			"hibi", "edit", added.ID, "--total-time=-10",
		})
		assert.Error(t, err)

		got, ok := flags.Service.Get(added.ID)
		require.True(t, ok)
		assert.Zero(t, got.TotalTime, "rejected correction keeps prior value")
	})
}
