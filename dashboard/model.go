package dashboard

import "time"

// HealthStatus is the project health bucket.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthModerate  HealthStatus = "moderate"
	HealthAtRisk    HealthStatus = "at-risk"
	HealthCritical  HealthStatus = "critical"
)

// healthOrder sorts critical first, matching the portfolio view.
var healthOrder = map[HealthStatus]int{
	HealthCritical:  0,
	HealthAtRisk:    1,
	HealthModerate:  2,
	HealthGood:      3,
	HealthExcellent: 4,
}

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// TaskPriority is the urgency bucket of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

type Comment struct {
	ID         string
	Content    string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
}

type Task struct {
	ID           string
	Title        string
	Description  string
	Status       TaskStatus
	Priority     TaskPriority
	DueDate      time.Time
	AssigneeID   string
	AssigneeName string
	ProjectID    string
	ProjectName  string
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Comments     []Comment
}

type Project struct {
	ID             string
	Name           string
	Description    string
	Health         HealthStatus
	HealthScore    int
	Progress       int
	StartDate      time.Time
	EndDate        time.Time
	ManagerID      string
	ManagerName    string
	MemberIDs      []string
	TaskCount      int
	CompletedTasks int
	RiskCount      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TeamMember struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Avatar     string
	Department string
	TaskCount  int
	ProjectIDs []string
}

// InsightType classifies an AI insight card.
type InsightType string

const (
	InsightRisk           InsightType = "risk"
	InsightRecommendation InsightType = "recommendation"
	InsightPrediction     InsightType = "prediction"
	InsightAlert          InsightType = "alert"
)

type Insight struct {
	ID                  string
	Type                InsightType
	Title               string
	Description         string
	ConfidenceScore     int
	Signals             []string
	AffectedProjectID   string
	AffectedProjectName string
	CreatedAt           time.Time
	IsRead              bool
}

// RiskSeverity buckets a risk by how bad it gets if it lands.
type RiskSeverity string

const (
	SeverityLow      RiskSeverity = "low"
	SeverityMedium   RiskSeverity = "medium"
	SeverityHigh     RiskSeverity = "high"
	SeverityCritical RiskSeverity = "critical"
)

// RiskStatus tracks the mitigation lifecycle.
type RiskStatus string

const (
	RiskIdentified RiskStatus = "identified"
	RiskMitigating RiskStatus = "mitigating"
	RiskResolved   RiskStatus = "resolved"
)

type Risk struct {
	ID             string
	Title          string
	Description    string
	Severity       RiskSeverity
	Probability    int
	Impact         int
	ProjectID      string
	ProjectName    string
	Status         RiskStatus
	MitigationPlan string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EventType classifies a timeline entry.
type EventType string

const (
	EventTask      EventType = "task"
	EventMilestone EventType = "milestone"
	EventDeadline  EventType = "deadline"
	EventMeeting   EventType = "meeting"
)

type TimelineEvent struct {
	ID          string
	Type        EventType
	Title       string
	Date        time.Time
	ProjectID   string
	ProjectName string
	Status      TaskStatus
}

// KPI is one headline number on the dashboard.
type KPI struct {
	Label string
	Value string
}

// HealthBucket is one slice of the health distribution chart. Buckets with a
// zero count are omitted from results.
type HealthBucket struct {
	Status HealthStatus
	Count  int
}

// MemberLoad is one bar of the task-load report.
type MemberLoad struct {
	Name      string
	Tasks     int
	Completed int
}

// DayEvents groups timeline events sharing a calendar day.
type DayEvents struct {
	Date   time.Time
	Events []TimelineEvent
}

// SortOption selects the project list ordering.
type SortOption string

const (
	SortByName     SortOption = "name"
	SortByHealth   SortOption = "health"
	SortByProgress SortOption = "progress"
	SortByEndDate  SortOption = "endDate"
)

// Filter narrows and orders the project list. Zero value means everything,
// sorted by health (critical first).
type Filter struct {
	Search string
	Health HealthStatus
	SortBy SortOption
}
