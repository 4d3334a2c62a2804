package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
)

type MatchdayRepository struct {
	mu        sync.RWMutex
	matchdays map[int]matchday.Matchday
}

func NewMatchdayRepository(items []matchday.Matchday) *MatchdayRepository {
	matchdays := make(map[int]matchday.Matchday, len(items))
	for _, item := range items {
		matchdays[item.Jornada] = cloneMatchday(item)
	}

	return &MatchdayRepository{matchdays: matchdays}
}

func (r *MatchdayRepository) List(_ context.Context) ([]matchday.Matchday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchday.Matchday, 0, len(r.matchdays))
	for _, item := range r.matchdays {
		out = append(out, cloneMatchday(item))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Jornada < out[j].Jornada
	})
	return out, nil
}

func (r *MatchdayRepository) GetByJornada(_ context.Context, jornada int) (matchday.Matchday, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matchdays[jornada]
	if !ok {
		return matchday.Matchday{}, false, nil
	}
	return cloneMatchday(item), true, nil
}

func (r *MatchdayRepository) UpdateResult(_ context.Context, jornada, index int, result matchday.Result) (bool, error) {
	return r.mutate(jornada, index, func(m *matchday.Match) bool {
		m.HomeGoals = result.HomeGoals
		m.AwayGoals = result.AwayGoals
		m.Status = result.Status
		return true
	})
}

func (r *MatchdayRepository) UpdateSchedule(_ context.Context, jornada, index int, date, kickoff string) (bool, error) {
	return r.mutate(jornada, index, func(m *matchday.Match) bool {
		m.Date = date
		m.Time = kickoff
		return true
	})
}

func (r *MatchdayRepository) MarkLive(_ context.Context, jornada, index int) (bool, error) {
	return r.mutate(jornada, index, func(m *matchday.Match) bool {
		if matchday.NormalizeStatus(string(m.Status)) != matchday.StatusPending {
			return false
		}
		m.Status = matchday.StatusLive
		return true
	})
}

func (r *MatchdayRepository) mutate(jornada, index int, apply func(m *matchday.Match) bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matchdays[jornada]
	if !ok || index < 0 || index >= len(item.Matches) {
		return false, nil
	}
	if !apply(&item.Matches[index]) {
		return false, nil
	}
	r.matchdays[jornada] = item
	return true, nil
}

func cloneMatchday(md matchday.Matchday) matchday.Matchday {
	out := md
	out.Matches = append([]matchday.Match(nil), md.Matches...)
	return out
}
