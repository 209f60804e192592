package task

// Tab selects which view the UI is showing. Pure cursor state, persisted
// so the app reopens where it was left.
type Tab string

const (
	TabTasks     Tab = "tasks"
	TabAnalytics Tab = "analytics"
)

// IsValid reports whether t is a known tab value.
func (t Tab) IsValid() bool {
	return t == TabTasks || t == TabAnalytics
}

// State is the entire persisted store state: the task collection, the
// user-introduced genres, and the UI cursor.
type State struct {
	Tasks        []Task   `json:"tasks"`
	CustomGenres []string `json:"custom_genres,omitempty"`
	SelectedDate Day      `json:"selected_date,omitempty"`
	ActiveTab    Tab      `json:"active_tab,omitempty"`
}

// StateStore loads and saves the whole store state as one blob.
type StateStore interface {
	// Load returns the persisted state. A missing blob yields an empty
	// state with no error.
	Load() (State, error)

	// Save persists the state, replacing the previous blob.
	Save(State) error
}
