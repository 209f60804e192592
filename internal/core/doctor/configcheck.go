package doctor

import (
	"context"
	"fmt"

	"github.com/hibi-cli/hibi/internal/core/config"
)

// ConfigCheck validates the loaded configuration.
type ConfigCheck struct {
	Config *config.Config
}

func (c *ConfigCheck) Name() string { return "Config" }

func (c *ConfigCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if err := c.Config.ValidateDeep(); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "config",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "config",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d default genres, theme %q", len(c.Config.DefaultGenres), c.Config.TUI.Theme),
	})
	return result
}
