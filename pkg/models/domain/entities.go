package domain

import "time"

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

type SprintStatus string

const (
	SprintPlanning  SprintStatus = "planning"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
	SprintCancelled SprintStatus = "cancelled"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskInReview   TaskStatus = "in_review"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

type Project struct {
	ID       string
	Name     string
	Status   ProjectStatus
	Budget   float64
	Spent    float64
	Progress int // 0-100
}

type Sprint struct {
	ID                   string
	ProjectID            string
	Status               SprintStatus
	StartDate            time.Time
	EndDate              time.Time
	StoryPointsCommitted int
	StoryPointsCompleted int
	Velocity             float64
}

type Task struct {
	ID          string
	ProjectID   string
	SprintID    string // empty when not assigned to a sprint
	Status      TaskStatus
	StoryPoints int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TimeEntry struct {
	ID        string
	TaskID    string
	ProjectID string
	UserID    string
	Hours     float64
}
