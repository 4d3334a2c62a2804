package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchday"
	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
	"github.com/riskibarqy/liga-amateur/internal/domain/team"
	basecache "github.com/riskibarqy/liga-amateur/internal/platform/cache"
)

const (
	matchdayPrefix = "matchday:"
	reportPrefix   = "matchreport:"
)

// MatchdayRepository caches reads and evicts every matchday entry on any
// successful write, so the next read sees the change.
type MatchdayRepository struct {
	next  matchday.Repository
	cache *basecache.Store
}

func NewMatchdayRepository(next matchday.Repository, cache *basecache.Store) *MatchdayRepository {
	return &MatchdayRepository{next: next, cache: cache}
}

func (r *MatchdayRepository) List(ctx context.Context) ([]matchday.Matchday, error) {
	v, err := r.cache.GetOrLoad(ctx, matchdayPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneMatchdays(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchday.Matchday)
	return cloneMatchdays(items), nil
}

func (r *MatchdayRepository) GetByJornada(ctx context.Context, jornada int) (matchday.Matchday, bool, error) {
	key := matchdayPrefix + "jornada:" + strconv.Itoa(jornada)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByJornada(ctx, jornada)
		if err != nil {
			return nil, err
		}
		return cachedMatchday{value: cloneMatchday(item), exists: exists}, nil
	})
	if err != nil {
		return matchday.Matchday{}, false, err
	}

	cached, _ := v.(cachedMatchday)
	return cloneMatchday(cached.value), cached.exists, nil
}

func (r *MatchdayRepository) UpdateResult(ctx context.Context, jornada, index int, result matchday.Result) (bool, error) {
	return r.write(ctx, func() (bool, error) {
		return r.next.UpdateResult(ctx, jornada, index, result)
	})
}

func (r *MatchdayRepository) UpdateSchedule(ctx context.Context, jornada, index int, date, kickoff string) (bool, error) {
	return r.write(ctx, func() (bool, error) {
		return r.next.UpdateSchedule(ctx, jornada, index, date, kickoff)
	})
}

func (r *MatchdayRepository) MarkLive(ctx context.Context, jornada, index int) (bool, error) {
	return r.write(ctx, func() (bool, error) {
		return r.next.MarkLive(ctx, jornada, index)
	})
}

func (r *MatchdayRepository) write(ctx context.Context, fn func() (bool, error)) (bool, error) {
	changed, err := fn()
	if err != nil {
		return false, err
	}
	if changed {
		r.cache.DeletePrefix(ctx, matchdayPrefix)
	}
	return changed, nil
}

type cachedMatchday struct {
	value  matchday.Matchday
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:name:"+name, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

type cachedTeam struct {
	value  team.Team
	exists bool
}

type MatchReportRepository struct {
	next  matchreport.Repository
	cache *basecache.Store
}

func NewMatchReportRepository(next matchreport.Repository, cache *basecache.Store) *MatchReportRepository {
	return &MatchReportRepository{next: next, cache: cache}
}

func (r *MatchReportRepository) List(ctx context.Context) ([]matchreport.MatchReport, error) {
	v, err := r.cache.GetOrLoad(ctx, reportPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]matchreport.MatchReport(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchreport.MatchReport)
	return append([]matchreport.MatchReport(nil), items...), nil
}

func (r *MatchReportRepository) Get(ctx context.Context, key matchreport.ReportKey) (matchreport.MatchReport, bool, error) {
	// Key parts are joined with a NUL so hyphenated names cannot collide.
	cacheKey := reportPrefix + "key:" + key.Home + "\x00" + key.Away
	v, err := r.cache.GetOrLoad(ctx, cacheKey, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		return cachedReport{value: item, exists: exists}, nil
	})
	if err != nil {
		return matchreport.MatchReport{}, false, err
	}

	cached, _ := v.(cachedReport)
	return cached.value, cached.exists, nil
}

func (r *MatchReportRepository) Upsert(ctx context.Context, report matchreport.MatchReport) error {
	if err := r.next.Upsert(ctx, report); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, reportPrefix)
	return nil
}

type cachedReport struct {
	value  matchreport.MatchReport
	exists bool
}

func cloneMatchday(md matchday.Matchday) matchday.Matchday {
	out := md
	out.Matches = append([]matchday.Match(nil), md.Matches...)
	return out
}

func cloneMatchdays(items []matchday.Matchday) []matchday.Matchday {
	out := make([]matchday.Matchday, 0, len(items))
	for _, item := range items {
		out = append(out, cloneMatchday(item))
	}
	return out
}
