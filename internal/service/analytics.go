package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/google/uuid"
)

// upcomingDays is how far past today the dashboard looks ahead.
const upcomingDays = 4

type AnalyticsService struct {
	ledger   repository.LedgerReaderIface
	sites    repository.SiteRepositoryIface
	profiles repository.ProfileRepositoryIface
	tasks    repository.TaskRepositoryIface
	now      func() time.Time
}

func NewAnalyticsService(
	ledger repository.LedgerReaderIface,
	sites repository.SiteRepositoryIface,
	profiles repository.ProfileRepositoryIface,
	tasks repository.TaskRepositoryIface,
) *AnalyticsService {
	return &AnalyticsService{ledger: ledger, sites: sites, profiles: profiles, tasks: tasks, now: time.Now}
}

// Analytics is the organization-wide financial report. A non-empty group
// limits the site leaderboard to that tab of the projects board; totals
// always cover the whole organization.
func (s *AnalyticsService) Analytics(ctx context.Context, orgID uuid.UUID, group model.SiteGroup) (*ledger.Analytics, error) {
	var filter repository.LedgerFilter
	if group != "" {
		if filter.SiteStatuses = group.Statuses(); filter.SiteStatuses == nil {
			return nil, fmt.Errorf("%w: unknown site group %q", domain.ErrInvalidInput, group)
		}
	}

	data, err := s.ledger.Load(ctx, orgID, filter)
	if err != nil {
		return nil, err
	}
	report := ledger.Analyze(data.Sites, data.Entries, data.Materials, data.Labor)
	return &report, nil
}

type Dashboard struct {
	ActiveSites   int64        `json:"active_sites"`
	ActiveMembers int64        `json:"active_members"`
	OpenTasks     int64        `json:"open_tasks"`
	Overdue       []model.Task `json:"overdue"`
	Upcoming      []model.Task `json:"upcoming"`
}

// Dashboard counts the organization's active work. Overdue tasks are open
// tasks that started before today; upcoming tasks start between today and
// the end of the fourth day after it.
func (s *AnalyticsService) Dashboard(ctx context.Context, orgID uuid.UUID) (*Dashboard, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		d   Dashboard
		err error
	)
	if d.ActiveSites, err = s.sites.Count(ctx, orgID, model.SiteActive); err != nil {
		return nil, err
	}
	if d.ActiveMembers, err = s.profiles.CountActive(ctx, orgID); err != nil {
		return nil, err
	}
	if d.OpenTasks, err = s.tasks.Count(ctx, orgID, model.TaskTodo); err != nil {
		return nil, err
	}
	if d.Overdue, err = s.tasks.List(ctx, orgID, repository.TaskFilter{Status: model.TaskTodo, StartBefore: today}); err != nil {
		return nil, err
	}
	if d.Upcoming, err = s.tasks.List(ctx, orgID, repository.TaskFilter{From: today, To: today.AddDate(0, 0, upcomingDays+1)}); err != nil {
		return nil, err
	}
	return &d, nil
}
