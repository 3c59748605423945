package dashboard

import "time"

// Dataset is the raw material a Provider serves from.
type Dataset struct {
	Projects []Project
	Tasks    []Task
	Members  []TeamMember
	Insights []Insight
	Risks    []Risk
	Events   []TimelineEvent
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultDataset returns the demo portfolio: six projects across five health
// buckets, eight members, and enough tasks, risks, and events to make every
// derived view non-trivial.
func DefaultDataset() Dataset {
	return Dataset{
		Projects: []Project{
			{
				ID: "proj-1", Name: "Apollo Migration",
				Description: "Move the billing platform onto the new event pipeline",
				Health:      HealthGood, HealthScore: 78, Progress: 64,
				StartDate: day(2026, 3, 2), EndDate: day(2026, 11, 30),
				ManagerID: "member-1", ManagerName: "Sarah Chen",
				MemberIDs: []string{"member-2", "member-3", "member-5"},
				TaskCount: 24, CompletedTasks: 15, RiskCount: 1,
				CreatedAt: day(2026, 2, 20), UpdatedAt: day(2026, 8, 28),
			},
			{
				ID: "proj-2", Name: "Borealis Mobile App",
				Description: "Customer-facing mobile app rewrite in the new design system",
				Health:      HealthAtRisk, HealthScore: 54, Progress: 41,
				StartDate: day(2026, 1, 12), EndDate: day(2026, 10, 15),
				ManagerID: "member-1", ManagerName: "Sarah Chen",
				MemberIDs: []string{"member-4", "member-6", "member-7"},
				TaskCount: 31, CompletedTasks: 12, RiskCount: 3,
				CreatedAt: day(2025, 12, 18), UpdatedAt: day(2026, 8, 30),
			},
			{
				ID: "proj-3", Name: "Customer Portal v2",
				Description: "Self-service portal with usage analytics and billing history",
				Health:      HealthExcellent, HealthScore: 92, Progress: 88,
				StartDate: day(2026, 2, 1), EndDate: day(2026, 9, 30),
				ManagerID: "member-8", ManagerName: "Marcus Webb",
				MemberIDs: []string{"member-2", "member-5"},
				TaskCount: 18, CompletedTasks: 16, RiskCount: 0,
				CreatedAt: day(2026, 1, 15), UpdatedAt: day(2026, 8, 25),
			},
			{
				ID: "proj-4", Name: "Data Warehouse Refresh",
				Description: "Replace nightly batch loads with streaming ingestion",
				Health:      HealthCritical, HealthScore: 31, Progress: 22,
				StartDate: day(2026, 4, 6), EndDate: day(2026, 12, 18),
				ManagerID: "member-8", ManagerName: "Marcus Webb",
				MemberIDs: []string{"member-3", "member-6"},
				TaskCount: 27, CompletedTasks: 5, RiskCount: 4,
				CreatedAt: day(2026, 3, 22), UpdatedAt: day(2026, 8, 31),
			},
			{
				ID: "proj-5", Name: "Edge Caching Layer",
				Description: "Regional cache nodes for static assets and API responses",
				Health:      HealthModerate, HealthScore: 65, Progress: 50,
				StartDate: day(2026, 5, 4), EndDate: day(2027, 1, 29),
				ManagerID: "member-1", ManagerName: "Sarah Chen",
				MemberIDs: []string{"member-4", "member-7"},
				TaskCount: 14, CompletedTasks: 6, RiskCount: 2,
				CreatedAt: day(2026, 4, 20), UpdatedAt: day(2026, 8, 27),
			},
			{
				ID: "proj-6", Name: "Fleet Telemetry",
				Description: "Device health reporting for the managed hardware fleet",
				Health:      HealthGood, HealthScore: 81, Progress: 73,
				StartDate: day(2026, 3, 16), EndDate: day(2026, 10, 30),
				ManagerID: "member-8", ManagerName: "Marcus Webb",
				MemberIDs: []string{"member-2", "member-3", "member-5", "member-7"},
				TaskCount: 21, CompletedTasks: 14, RiskCount: 1,
				CreatedAt: day(2026, 3, 1), UpdatedAt: day(2026, 8, 29),
			},
		},
		Members: []TeamMember{
			{ID: "member-1", Name: "Sarah Chen", Email: "sarah.chen@acme.com", Role: "manager", Department: "Engineering", TaskCount: 9, ProjectIDs: []string{"proj-1", "proj-2", "proj-5"}},
			{ID: "member-2", Name: "Diego Alvarez", Email: "diego.alvarez@acme.com", Role: "member", Department: "Engineering", TaskCount: 12, ProjectIDs: []string{"proj-1", "proj-3", "proj-6"}},
			{ID: "member-3", Name: "Priya Nair", Email: "priya.nair@acme.com", Role: "member", Department: "Data", TaskCount: 10, ProjectIDs: []string{"proj-1", "proj-4", "proj-6"}},
			{ID: "member-4", Name: "Tom Okafor", Email: "tom.okafor@acme.com", Role: "member", Department: "Mobile", TaskCount: 11, ProjectIDs: []string{"proj-2", "proj-5"}},
			{ID: "member-5", Name: "Lena Fischer", Email: "lena.fischer@acme.com", Role: "member", Department: "Design", TaskCount: 7, ProjectIDs: []string{"proj-1", "proj-3", "proj-6"}},
			{ID: "member-6", Name: "Ahmed Hassan", Email: "ahmed.hassan@acme.com", Role: "member", Department: "Data", TaskCount: 8, ProjectIDs: []string{"proj-2", "proj-4"}},
			{ID: "member-7", Name: "Julia Kowalski", Email: "julia.kowalski@acme.com", Role: "member", Department: "Engineering", TaskCount: 13, ProjectIDs: []string{"proj-2", "proj-5", "proj-6"}},
			{ID: "member-8", Name: "Marcus Webb", Email: "marcus.webb@acme.com", Role: "manager", Department: "Engineering", TaskCount: 6, ProjectIDs: []string{"proj-3", "proj-4", "proj-6"}},
		},
		Tasks: []Task{
			{
				ID: "task-1", Title: "Migrate invoice events to new schema",
				Description: "Backfill historical invoices into the v2 event format",
				Status:      StatusInProgress, Priority: PriorityHigh,
				DueDate: day(2026, 9, 12), AssigneeID: "member-3", AssigneeName: "Priya Nair",
				ProjectID: "proj-1", ProjectName: "Apollo Migration",
				Tags:      []string{"backend", "migration"},
				CreatedAt: day(2026, 8, 1), UpdatedAt: day(2026, 8, 28),
				Comments: []Comment{
					{ID: "comment-1", Content: "Backfill script passes on staging.", AuthorID: "member-3", AuthorName: "Priya Nair", CreatedAt: day(2026, 8, 27)},
				},
			},
			{
				ID: "task-2", Title: "Fix crash on offline checkout",
				Description: "App crashes when checkout is opened without connectivity",
				Status:      StatusTodo, Priority: PriorityUrgent,
				DueDate: day(2026, 9, 5), AssigneeID: "member-4", AssigneeName: "Tom Okafor",
				ProjectID: "proj-2", ProjectName: "Borealis Mobile App",
				Tags:      []string{"mobile", "bug"},
				CreatedAt: day(2026, 8, 20), UpdatedAt: day(2026, 8, 30),
			},
			{
				ID: "task-3", Title: "Usage analytics export",
				Description: "CSV export of per-account usage for the portal",
				Status:      StatusDone, Priority: PriorityMedium,
				DueDate: day(2026, 8, 22), AssigneeID: "member-2", AssigneeName: "Diego Alvarez",
				ProjectID: "proj-3", ProjectName: "Customer Portal v2",
				Tags:      []string{"frontend"},
				CreatedAt: day(2026, 7, 30), UpdatedAt: day(2026, 8, 22),
			},
			{
				ID: "task-4", Title: "Stream connector keeps dropping partitions",
				Description: "Kafka connector loses assignment under rebalance",
				Status:      StatusInProgress, Priority: PriorityUrgent,
				DueDate: day(2026, 9, 3), AssigneeID: "member-6", AssigneeName: "Ahmed Hassan",
				ProjectID: "proj-4", ProjectName: "Data Warehouse Refresh",
				Tags:      []string{"data", "incident"},
				CreatedAt: day(2026, 8, 15), UpdatedAt: day(2026, 8, 31),
				Comments: []Comment{
					{ID: "comment-2", Content: "Repro narrowed to the 2.8 client.", AuthorID: "member-6", AuthorName: "Ahmed Hassan", CreatedAt: day(2026, 8, 29)},
					{ID: "comment-3", Content: "Escalating to the platform team.", AuthorID: "member-8", AuthorName: "Marcus Webb", CreatedAt: day(2026, 8, 30)},
				},
			},
			{
				ID: "task-5", Title: "Cache invalidation protocol",
				Description: "Design doc for cross-region invalidation fan-out",
				Status:      StatusReview, Priority: PriorityHigh,
				DueDate: day(2026, 9, 18), AssigneeID: "member-7", AssigneeName: "Julia Kowalski",
				ProjectID: "proj-5", ProjectName: "Edge Caching Layer",
				Tags:      []string{"design", "infra"},
				CreatedAt: day(2026, 8, 5), UpdatedAt: day(2026, 8, 26),
			},
			{
				ID: "task-6", Title: "Device heartbeat dashboard",
				Description: "Grafana board for fleet heartbeat gaps",
				Status:      StatusDone, Priority: PriorityLow,
				DueDate: day(2026, 8, 14), AssigneeID: "member-5", AssigneeName: "Lena Fischer",
				ProjectID: "proj-6", ProjectName: "Fleet Telemetry",
				Tags:      []string{"observability"},
				CreatedAt: day(2026, 7, 20), UpdatedAt: day(2026, 8, 14),
			},
			{
				ID: "task-7", Title: "Retry policy for billing webhooks",
				Description: "Exponential backoff with jitter, capped at 6 attempts",
				Status:      StatusTodo, Priority: PriorityMedium,
				DueDate: day(2026, 9, 25), AssigneeID: "member-2", AssigneeName: "Diego Alvarez",
				ProjectID: "proj-1", ProjectName: "Apollo Migration",
				Tags:      []string{"backend"},
				CreatedAt: day(2026, 8, 18), UpdatedAt: day(2026, 8, 18),
			},
			{
				ID: "task-8", Title: "Push notification opt-in flow",
				Description: "New consent screen per the updated privacy review",
				Status:      StatusBacklog, Priority: PriorityLow,
				DueDate: day(2026, 10, 8), AssigneeID: "member-7", AssigneeName: "Julia Kowalski",
				ProjectID: "proj-2", ProjectName: "Borealis Mobile App",
				Tags:      []string{"mobile", "compliance"},
				CreatedAt: day(2026, 8, 24), UpdatedAt: day(2026, 8, 24),
			},
			{
				ID: "task-9", Title: "Warehouse cutover rehearsal",
				Description: "Full dry run of the batch-to-stream cutover",
				Status:      StatusTodo, Priority: PriorityHigh,
				DueDate: day(2026, 9, 9), AssigneeID: "member-3", AssigneeName: "Priya Nair",
				ProjectID: "proj-4", ProjectName: "Data Warehouse Refresh",
				Tags:      []string{"data"},
				CreatedAt: day(2026, 8, 21), UpdatedAt: day(2026, 8, 27),
			},
			{
				ID: "task-10", Title: "Portal accessibility audit fixes",
				Description: "Close out the remaining WCAG AA findings",
				Status:      StatusInProgress, Priority: PriorityMedium,
				DueDate: day(2026, 9, 15), AssigneeID: "member-5", AssigneeName: "Lena Fischer",
				ProjectID: "proj-3", ProjectName: "Customer Portal v2",
				Tags:      []string{"frontend", "a11y"},
				CreatedAt: day(2026, 8, 10), UpdatedAt: day(2026, 8, 25),
			},
			{
				ID: "task-11", Title: "Cache node provisioning automation",
				Description: "Terraform module for regional node rollout",
				Status:      StatusTodo, Priority: PriorityMedium,
				DueDate: day(2026, 10, 2), AssigneeID: "member-4", AssigneeName: "Tom Okafor",
				ProjectID: "proj-5", ProjectName: "Edge Caching Layer",
				Tags:      []string{"infra"},
				CreatedAt: day(2026, 8, 19), UpdatedAt: day(2026, 8, 19),
			},
			{
				ID: "task-12", Title: "Telemetry payload compression",
				Description: "Cut device upload size with delta encoding",
				Status:      StatusReview, Priority: PriorityLow,
				DueDate: day(2026, 9, 20), AssigneeID: "member-2", AssigneeName: "Diego Alvarez",
				ProjectID: "proj-6", ProjectName: "Fleet Telemetry",
				Tags:      []string{"firmware"},
				CreatedAt: day(2026, 8, 12), UpdatedAt: day(2026, 8, 28),
			},
		},
		Insights: []Insight{
			{
				ID: "insight-1", Type: InsightRisk,
				Title:       "Borealis velocity trending down",
				Description: "Completed story points dropped 30% over the last three sprints while scope grew.",
				ConfidenceScore: 87,
				Signals:         []string{"sprint velocity", "scope change rate", "open bug count"},
				AffectedProjectID: "proj-2", AffectedProjectName: "Borealis Mobile App",
				CreatedAt: day(2026, 8, 29), IsRead: false,
			},
			{
				ID: "insight-2", Type: InsightAlert,
				Title:       "Warehouse refresh blocked on a single engineer",
				Description: "82% of in-progress work is assigned to one person; absence risk is high.",
				ConfidenceScore: 91,
				Signals:         []string{"assignment concentration", "PTO calendar"},
				AffectedProjectID: "proj-4", AffectedProjectName: "Data Warehouse Refresh",
				CreatedAt: day(2026, 8, 30), IsRead: false,
			},
			{
				ID: "insight-3", Type: InsightRecommendation,
				Title:       "Rebalance Apollo review load",
				Description: "Two reviewers handle most Apollo PRs; spreading reviews would cut cycle time.",
				ConfidenceScore: 74,
				Signals:         []string{"review latency", "reviewer distribution"},
				AffectedProjectID: "proj-1", AffectedProjectName: "Apollo Migration",
				CreatedAt: day(2026, 8, 26), IsRead: true,
			},
			{
				ID: "insight-4", Type: InsightPrediction,
				Title:       "Portal v2 likely to land two weeks early",
				Description: "Burn-down projects completion around mid-September at current pace.",
				ConfidenceScore: 68,
				Signals:         []string{"burn-down slope", "remaining scope"},
				AffectedProjectID: "proj-3", AffectedProjectName: "Customer Portal v2",
				CreatedAt: day(2026, 8, 24), IsRead: true,
			},
			{
				ID: "insight-5", Type: InsightRisk,
				Title:       "Edge caching design review overdue",
				Description: "The invalidation design has sat in review past its SLA; downstream tasks are idle.",
				ConfidenceScore: 79,
				Signals:         []string{"review age", "blocked task count"},
				AffectedProjectID: "proj-5", AffectedProjectName: "Edge Caching Layer",
				CreatedAt: day(2026, 8, 31), IsRead: false,
			},
		},
		Risks: []Risk{
			{
				ID: "risk-1", Title: "Kafka client regression",
				Description: "Partition loss under rebalance threatens the ingestion cutover date.",
				Severity:    SeverityCritical, Probability: 70, Impact: 90,
				ProjectID: "proj-4", ProjectName: "Data Warehouse Refresh",
				Status:    RiskMitigating, MitigationPlan: "Pin client to 2.7 until the upstream fix ships.",
				CreatedAt: day(2026, 8, 16), UpdatedAt: day(2026, 8, 30),
			},
			{
				ID: "risk-2", Title: "App store review delays",
				Description: "Recent policy changes have doubled review turnaround for the mobile app.",
				Severity:    SeverityHigh, Probability: 60, Impact: 70,
				ProjectID: "proj-2", ProjectName: "Borealis Mobile App",
				Status:    RiskIdentified,
				CreatedAt: day(2026, 8, 22), UpdatedAt: day(2026, 8, 22),
			},
			{
				ID: "risk-3", Title: "Single vendor for cache hardware",
				Description: "Regional node rollout depends on one supplier's lead times.",
				Severity:    SeverityMedium, Probability: 40, Impact: 60,
				ProjectID: "proj-5", ProjectName: "Edge Caching Layer",
				Status:    RiskMitigating, MitigationPlan: "Qualify a second supplier before the Q4 order.",
				CreatedAt: day(2026, 8, 10), UpdatedAt: day(2026, 8, 25),
			},
			{
				ID: "risk-4", Title: "Billing backfill data quality",
				Description: "Legacy invoices carry inconsistent tax fields that may fail validation.",
				Severity:    SeverityMedium, Probability: 50, Impact: 50,
				ProjectID: "proj-1", ProjectName: "Apollo Migration",
				Status:    RiskResolved, MitigationPlan: "Normalization pass shipped with the backfill script.",
				CreatedAt: day(2026, 7, 28), UpdatedAt: day(2026, 8, 27),
			},
		},
		Events: []TimelineEvent{
			{ID: "event-1", Type: EventMilestone, Title: "Apollo backfill complete", Date: day(2026, 9, 12), ProjectID: "proj-1", ProjectName: "Apollo Migration"},
			{ID: "event-2", Type: EventDeadline, Title: "Borealis beta freeze", Date: day(2026, 9, 19), ProjectID: "proj-2", ProjectName: "Borealis Mobile App"},
			{ID: "event-3", Type: EventMeeting, Title: "Warehouse cutover go/no-go", Date: day(2026, 9, 10), ProjectID: "proj-4", ProjectName: "Data Warehouse Refresh"},
			{ID: "event-4", Type: EventTask, Title: "Portal a11y fixes due", Date: day(2026, 9, 15), ProjectID: "proj-3", ProjectName: "Customer Portal v2", Status: StatusInProgress},
			{ID: "event-5", Type: EventMilestone, Title: "Portal v2 launch", Date: day(2026, 9, 30), ProjectID: "proj-3", ProjectName: "Customer Portal v2"},
			{ID: "event-6", Type: EventMeeting, Title: "Edge caching design review", Date: day(2026, 9, 10), ProjectID: "proj-5", ProjectName: "Edge Caching Layer"},
			{ID: "event-7", Type: EventDeadline, Title: "Telemetry compression sign-off", Date: day(2026, 9, 20), ProjectID: "proj-6", ProjectName: "Fleet Telemetry"},
			{ID: "event-8", Type: EventTask, Title: "Offline checkout fix due", Date: day(2026, 9, 5), ProjectID: "proj-2", ProjectName: "Borealis Mobile App", Status: StatusTodo},
		},
	}
}
