package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hibi-cli/hibi/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("routine_genre", c.RoutineGenre, notEmpty),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		c.validateGenres(),
	)
}

// ValidateDeep performs I/O checks on top of Validate: the data directory
// must be a directory or not exist yet.
func (c *Config) ValidateDeep() error {
	if err := c.Validate(); err != nil {
		return err
	}
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func (c *Config) validateGenres() error {
	var errs criterio.FieldErrorsBuilder

	seen := make(map[string]bool, len(c.DefaultGenres))
	for i, g := range c.DefaultGenres {
		if g == "" {
			errs = errs.Append(fmt.Sprintf("default_genres[%d]", i), fmt.Errorf("genre cannot be empty"))
			continue
		}
		if seen[g] {
			errs = errs.Append(fmt.Sprintf("default_genres[%d]", i), fmt.Errorf("duplicate genre %q", g))
		}
		seen[g] = true
	}

	return errs.ToError()
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func themeExists(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
