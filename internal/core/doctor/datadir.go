package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hibi-cli/hibi/internal/store/jsonfile"
)

// DataDirCheck verifies the data directory and the state blob inside it.
type DataDirCheck struct {
	DataDir   string
	StatePath string
}

func (c *DataDirCheck) Name() string { return "Data" }

func (c *DataDirCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	info, err := os.Stat(c.DataDir)
	switch {
	case os.IsNotExist(err):
		result.Items = append(result.Items, CheckItem{
			Label:  "data directory",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s does not exist yet (created on first save)", c.DataDir),
		})
	case err != nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "data directory",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	case !info.IsDir():
		result.Items = append(result.Items, CheckItem{
			Label:  "data directory",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s exists but is not a directory", c.DataDir),
		})
		return result
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "data directory",
			Status: StatusPass,
			Detail: c.DataDir,
		})
	}

	result.Items = append(result.Items, c.checkState())
	return result
}

func (c *DataDirCheck) checkState() CheckItem {
	if _, err := os.Stat(c.StatePath); os.IsNotExist(err) {
		return CheckItem{
			Label:  "state file",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s does not exist yet", filepath.Base(c.StatePath)),
		}
	}

	state, err := jsonfile.NewStateStore(c.StatePath).Load()
	if err != nil {
		return CheckItem{
			Label:  "state file",
			Status: StatusFail,
			Detail: err.Error(),
		}
	}

	return CheckItem{
		Label:  "state file",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d tasks", len(state.Tasks)),
	}
}
