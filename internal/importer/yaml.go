// Package importer bulk-creates tasks from a YAML document.
package importer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hibi-cli/hibi/internal/core/task"
	"github.com/hibi-cli/hibi/internal/hibi"
)

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Title    string `yaml:"title"`
	Genre    string `yaml:"genre,omitempty"`
	Start    string `yaml:"start,omitempty"` // "15:04"
	Duration int    `yaml:"duration,omitempty"`
	Memo     string `yaml:"memo,omitempty"`
	Date     string `yaml:"date,omitempty"` // "2006-01-02", empty means today
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Import parses a YAML document and creates its tasks through the
// service. Returns the number of tasks created.
func Import(svc *hibi.Service, data []byte) (int, error) {
	var input YAMLInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return 0, fmt.Errorf("parse yaml: %w", err)
	}

	if len(input.Tasks) == 0 {
		return 0, fmt.Errorf("no tasks found in yaml")
	}

	count := 0
	for _, yt := range input.Tasks {
		var day task.Day
		if yt.Date != "" {
			parsed, err := task.ParseDay(yt.Date)
			if err != nil {
				return count, fmt.Errorf("task %q: invalid date %q", yt.Title, yt.Date)
			}
			day = parsed
		}

		if _, err := svc.Add(hibi.AddInput{
			Title:          yt.Title,
			Genre:          yt.Genre,
			ScheduledStart: yt.Start,
			ScheduledMins:  yt.Duration,
			Memo:           yt.Memo,
			Day:            day,
		}); err != nil {
			return count, fmt.Errorf("add task %q: %w", yt.Title, err)
		}
		count++
	}

	return count, nil
}
