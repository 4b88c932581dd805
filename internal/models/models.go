package models

// TaskType is the urgency/importance quadrant assigned to a logged task.
type TaskType string

const (
	TypeUrgentImportant TaskType = "UI"
	TypeImportant       TaskType = "I"
	TypeUrgent          TaskType = "U"
	TypeNecessary       TaskType = "N"
)

// TaskTypes lists the four quadrants in display order.
var TaskTypes = []TaskType{TypeUrgentImportant, TypeImportant, TypeUrgent, TypeNecessary}

var taskTypeLabels = map[TaskType]string{
	TypeUrgentImportant: "Urgent & Important",
	TypeImportant:       "Important",
	TypeUrgent:          "Urgent",
	TypeNecessary:       "Necessary",
}

// TaskTypeColors maps each quadrant to the hex color used by chart consumers.
var TaskTypeColors = map[TaskType]string{
	TypeUrgentImportant: "#e11d48",
	TypeImportant:       "#0284c7",
	TypeUrgent:          "#d97706",
	TypeNecessary:       "#475569",
}

func (t TaskType) Label() string {
	if l, ok := taskTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

func (t TaskType) Valid() bool {
	_, ok := taskTypeLabels[t]
	return ok
}

// Category is the quadrant assigned to a planner item. It shares codes with
// TaskType so planner items can be imported into the task log directly.
type Category string

const (
	CategoryUrgentImportant Category = "UI"
	CategoryImportant       Category = "I"
	CategoryUrgent          Category = "U"
	CategoryNecessary       Category = "N"
)

var Categories = []Category{CategoryUrgentImportant, CategoryImportant, CategoryUrgent, CategoryNecessary}

var categoryLabels = map[Category]string{
	CategoryUrgentImportant: "Urgent & Important",
	CategoryImportant:       "Important (Not Urgent)",
	CategoryUrgent:          "Urgent (Not Important)",
	CategoryNecessary:       "Necessary (Not Urgent/Important)",
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// TaskType returns the matching log quadrant. The code sets are identical.
func (c Category) TaskType() TaskType {
	return TaskType(c)
}

// Timeframe is the planning horizon a planner item belongs to. It is fixed at
// creation and decides which periodic view ever shows the item.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "DAILY"
	TimeframeWeekly  Timeframe = "WEEKLY"
	TimeframeMonthly Timeframe = "MONTHLY"
	TimeframeYearly  Timeframe = "YEARLY"
)

var Timeframes = []Timeframe{TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeYearly}

var timeframeLabels = map[Timeframe]string{
	TimeframeDaily:   "Today",
	TimeframeWeekly:  "This Week",
	TimeframeMonthly: "This Month",
	TimeframeYearly:  "This Year",
}

func (tf Timeframe) Label() string {
	if l, ok := timeframeLabels[tf]; ok {
		return l
	}
	return string(tf)
}

func (tf Timeframe) Valid() bool {
	_, ok := timeframeLabels[tf]
	return ok
}

// Task is a completed record of time actually spent. Dates are "2006-01-02"
// strings and times are "15:04" strings so range checks are plain string
// comparisons.
type Task struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Description     string   `json:"description"`
	Type            TaskType `json:"type"`
	DurationMinutes int      `json:"durationMinutes"`
}

// ToDoItem is a planned unit of work, independent of the task log.
type ToDoItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	Timeframe Timeframe `json:"timeframe"`
	Completed bool      `json:"completed"`
	CreatedAt string    `json:"createdAt"`
	Deadline  string    `json:"deadline,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Icon      string    `json:"icon,omitempty"`
}

// User is a local account. Passwords are stored as entered; this tool is a
// single-device credential store, not an identity provider.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// AppState holds the small bits of session state persisted between runs.
// The reset fields carry the pending password-reset code so it survives
// between the forgot and reset invocations.
type AppState struct {
	SessionUserID  string `json:"session_user_id,omitempty"`
	LastRunAt      string `json:"last_run_at,omitempty"`
	TimerStartedAt string `json:"timer_started_at,omitempty"`
	ResetEmail     string `json:"reset_email,omitempty"`
	ResetCode      string `json:"reset_code,omitempty"`
	ResetExpiresAt string `json:"reset_expires_at,omitempty"`
}
