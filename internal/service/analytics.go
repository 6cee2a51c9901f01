package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"shortlinks/internal/domain"
)

const dayLayout = "2006-01-02"

type AnalyticsService struct {
	repo Repository
}

func NewAnalyticsService(repo Repository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// GetAnalytics aggregates the stored clicks of a link owned by ownerID.
// TotalClicks is the link's counter and may differ from the number of
// stored click rows.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, id uuid.UUID, ownerID int64) (*domain.Analytics, error) {
	link, err := ownedLink(ctx, s.repo, id, ownerID)
	if err != nil {
		return nil, err
	}

	clicks, err := s.repo.ListClicks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}

	return aggregate(link.Clicks, clicks), nil
}

func aggregate(total int64, clicks []domain.Click) *domain.Analytics {
	a := &domain.Analytics{
		TotalClicks: total,
		ClicksByDay: make(map[string]int),
		DeviceStats: map[string]int{
			string(domain.DeviceDesktop): 0,
			string(domain.DeviceMobile):  0,
			string(domain.DeviceTablet):  0,
		},
		BrowserStats: make(map[string]int),
	}

	for _, c := range clicks {
		a.ClicksByDay[c.Timestamp.UTC().Format(dayLayout)]++
		a.DeviceStats[string(c.Device)]++
		a.BrowserStats[c.Browser]++
	}
	return a
}
