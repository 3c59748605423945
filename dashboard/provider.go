package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Provider serves derived views over a Dataset. All methods return fresh
// slices; callers may reorder or mutate results freely.
type Provider struct {
	data Dataset
}

// NewProvider wraps ds. Pass DefaultDataset() for the demo portfolio.
func NewProvider(ds Dataset) *Provider {
	return &Provider{data: ds}
}

// Projects returns the portfolio narrowed and ordered by f. Search matches
// name or description case-insensitively.
func (p *Provider) Projects(f Filter) []Project {
	out := make([]Project, 0, len(p.data.Projects))
	q := strings.ToLower(f.Search)
	for _, proj := range p.data.Projects {
		if q != "" &&
			!strings.Contains(strings.ToLower(proj.Name), q) &&
			!strings.Contains(strings.ToLower(proj.Description), q) {
			continue
		}
		if f.Health != "" && proj.Health != f.Health {
			continue
		}
		out = append(out, proj)
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = SortByHealth
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch sortBy {
		case SortByName:
			return a.Name < b.Name
		case SortByHealth:
			return healthOrder[a.Health] < healthOrder[b.Health]
		case SortByProgress:
			return a.Progress > b.Progress
		case SortByEndDate:
			return a.EndDate.Before(b.EndDate)
		default:
			return false
		}
	})
	return out
}

// Project looks up one project by ID.
func (p *Provider) Project(id string) (Project, bool) {
	for _, proj := range p.data.Projects {
		if proj.ID == id {
			return proj, true
		}
	}
	return Project{}, false
}

// TasksForProject returns the tasks of one project, or every task when
// projectID is empty.
func (p *Provider) TasksForProject(projectID string) []Task {
	out := make([]Task, 0, len(p.data.Tasks))
	for _, t := range p.data.Tasks {
		if projectID == "" || t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// MembersForProject returns the members assigned to a project, manager
// included. An empty projectID returns the whole team.
func (p *Provider) MembersForProject(projectID string) []TeamMember {
	if projectID == "" {
		out := make([]TeamMember, len(p.data.Members))
		copy(out, p.data.Members)
		return out
	}

	proj, ok := p.Project(projectID)
	if !ok {
		return nil
	}
	ids := map[string]bool{proj.ManagerID: true}
	for _, id := range proj.MemberIDs {
		ids[id] = true
	}

	var out []TeamMember
	for _, m := range p.data.Members {
		if ids[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// KPIs returns the dashboard headline numbers, scoped to one project when
// projectID is non-empty: active projects, open tasks, at-risk projects,
// average health score, unread insights.
func (p *Provider) KPIs(projectID string) []KPI {
	projects := p.scopedProjects(projectID)
	tasks := p.TasksForProject(projectID)

	open := 0
	for _, t := range tasks {
		if t.Status != StatusDone {
			open++
		}
	}

	atRisk := 0
	scoreSum := 0
	for _, proj := range projects {
		if proj.Health == HealthAtRisk || proj.Health == HealthCritical {
			atRisk++
		}
		scoreSum += proj.HealthScore
	}

	avg := 0
	if len(projects) > 0 {
		avg = int(math.Round(float64(scoreSum) / float64(len(projects))))
	}

	return []KPI{
		{Label: "Active Projects", Value: fmt.Sprintf("%d", len(projects))},
		{Label: "Open Tasks", Value: fmt.Sprintf("%d", open)},
		{Label: "At-Risk Projects", Value: fmt.Sprintf("%d", atRisk)},
		{Label: "Avg. Health Score", Value: fmt.Sprintf("%d%%", avg)},
		{Label: "Unread Insights", Value: fmt.Sprintf("%d", len(p.UnreadInsights()))},
	}
}

// HealthDistribution counts projects per health bucket, critical first.
// Zero buckets are omitted.
func (p *Provider) HealthDistribution(projectID string) []HealthBucket {
	counts := map[HealthStatus]int{}
	for _, proj := range p.scopedProjects(projectID) {
		counts[proj.Health]++
	}

	order := []HealthStatus{HealthCritical, HealthAtRisk, HealthModerate, HealthGood, HealthExcellent}
	var out []HealthBucket
	for _, h := range order {
		if counts[h] > 0 {
			out = append(out, HealthBucket{Status: h, Count: counts[h]})
		}
	}
	return out
}

// TaskLoadByMember returns the first limit members as report bars: first
// name, task count, and completed approximated at 60% of the load.
func (p *Provider) TaskLoadByMember(limit int) []MemberLoad {
	if limit <= 0 || limit > len(p.data.Members) {
		limit = len(p.data.Members)
	}

	out := make([]MemberLoad, 0, limit)
	for _, m := range p.data.Members[:limit] {
		first, _, _ := strings.Cut(m.Name, " ")
		out = append(out, MemberLoad{
			Name:      first,
			Tasks:     m.TaskCount,
			Completed: int(math.Floor(float64(m.TaskCount) * 0.6)),
		})
	}
	return out
}

// UpcomingTasks returns the next not-done tasks by due date, at most limit.
func (p *Provider) UpcomingTasks(projectID string, limit int) []Task {
	var out []Task
	for _, t := range p.data.Tasks {
		if t.Status == StatusDone {
			continue
		}
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// EventsByDate groups timeline events by calendar day, days ascending.
// Events within one day keep dataset order.
func (p *Provider) EventsByDate(projectID string) []DayEvents {
	groups := map[string]*DayEvents{}
	var keys []string
	for _, e := range p.data.Events {
		if projectID != "" && e.ProjectID != projectID {
			continue
		}
		key := e.Date.Format("2006-01-02")
		g, ok := groups[key]
		if !ok {
			g = &DayEvents{Date: e.Date}
			groups[key] = g
			keys = append(keys, key)
		}
		g.Events = append(g.Events, e)
	}

	sort.Strings(keys)
	out := make([]DayEvents, 0, len(keys))
	for _, k := range keys {
		out = append(out, *groups[k])
	}
	return out
}

// Insights returns every insight, newest first.
func (p *Provider) Insights() []Insight {
	out := make([]Insight, len(p.data.Insights))
	copy(out, p.data.Insights)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UnreadInsights returns insights not yet marked read, newest first.
func (p *Provider) UnreadInsights() []Insight {
	var out []Insight
	for _, in := range p.Insights() {
		if !in.IsRead {
			out = append(out, in)
		}
	}
	return out
}

// Risks returns the risk register, scoped to one project when projectID is
// non-empty.
func (p *Provider) Risks(projectID string) []Risk {
	var out []Risk
	for _, r := range p.data.Risks {
		if projectID == "" || r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out
}

func (p *Provider) scopedProjects(projectID string) []Project {
	if projectID == "" {
		return p.data.Projects
	}
	if proj, ok := p.Project(projectID); ok {
		return []Project{proj}
	}
	return nil
}
