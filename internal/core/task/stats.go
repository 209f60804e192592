package task

// Stats summarizes the tasks of a single day.
type Stats struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	TotalTime      int64   `json:"total_time"`
	CompletionRate float64 `json:"completion_rate"` // percentage, 0 when no tasks
}

// GenreStat is one aggregation row: accrued time and task count for a
// single genre.
type GenreStat struct {
	Genre     string `json:"genre"`
	TotalTime int64  `json:"total_time"`
	TaskCount int    `json:"task_count"`
}

// StatsFor aggregates completion and accrued time over tasks.
func StatsFor(tasks []Task) Stats {
	s := Stats{TotalTasks: len(tasks)}
	for _, t := range tasks {
		s.TotalTime += t.TotalTime
		if t.Status == StatusCompleted {
			s.CompletedTasks++
		}
	}
	if s.TotalTasks > 0 {
		s.CompletionRate = float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
	}
	return s
}

// GenreStatsFor groups tasks by genre, summing accrued time and counting
// tasks. Rows come back in first-seen order.
func GenreStatsFor(tasks []Task) []GenreStat {
	index := make(map[string]int)
	var rows []GenreStat
	for _, t := range tasks {
		i, ok := index[t.Genre]
		if !ok {
			i = len(rows)
			index[t.Genre] = i
			rows = append(rows, GenreStat{Genre: t.Genre})
		}
		rows[i].TotalTime += t.TotalTime
		rows[i].TaskCount++
	}
	return rows
}
