package idle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/logger"
	"github.com/osse101/Skirmish_Go/internal/metrics"
	"github.com/osse101/Skirmish_Go/internal/mission"
)

// Service defines the interface for daily idle results
type Service interface {
	GetOrRunDailyResult(ctx context.Context, hero domain.HeroSnapshot, maxRuns int) (*domain.DailyResult, error)
}

// MissionResolver resolves one encounter. mission.Service satisfies it.
type MissionResolver interface {
	AutoResolveCombat(ctx context.Context, hero domain.HeroSnapshot, enemies []domain.EnemyDescriptor) (*domain.CombatResult, error)
}

type service struct {
	store    Store
	missions MissionResolver
	loc      *time.Location
	now      func() time.Time
	flights  singleflight.Group
}

// NewService creates a new idle service. Dates are computed in loc; a nil
// now uses time.Now.
func NewService(store Store, missions MissionResolver, loc *time.Location, now func() time.Time) Service {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		store:    store,
		missions: missions,
		loc:      loc,
		now:      now,
	}
}

// RunCount returns how many runs a hero gets today. maxRuns > 0 replaces
// the tier count; either way the result is clamped to [1, 3].
func RunCount(level, maxRuns int) int {
	runs := mission.DailyRuns(level)
	if maxRuns > 0 {
		runs = maxRuns
	}
	if runs < MinRuns {
		return MinRuns
	}
	if runs > MaxRuns {
		return MaxRuns
	}
	return runs
}

// GetOrRunDailyResult returns the hero's result for the current local date,
// running the simulator only when nothing is stored yet. Concurrent callers
// for the same key share one run.
func (s *service) GetOrRunDailyResult(ctx context.Context, hero domain.HeroSnapshot, maxRuns int) (*domain.DailyResult, error) {
	if strings.TrimSpace(hero.ID) == "" {
		return nil, domain.ErrMissingHeroID
	}
	if !domain.ValidLevel(hero.Level()) {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]", domain.ErrInvalidLevel, hero.Level(), domain.MinLevel, domain.MaxLevel)
	}

	dateKey := DateKey(s.now(), s.loc)
	key := CacheKey(hero.ID, dateKey)
	runs := RunCount(hero.Level(), maxRuns)

	v, err, _ := s.flights.Do(key, func() (interface{}, error) {
		return s.loadOrRun(context.WithoutCancel(ctx), key, dateKey, hero, runs)
	})
	if err != nil {
		return nil, err
	}

	// every caller decodes its own copy of the shared payload
	var result domain.DailyResult
	if err := json.Unmarshal(v.([]byte), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptPayload, err)
	}
	return &result, nil
}

func (s *service) loadOrRun(ctx context.Context, key, dateKey string, hero domain.HeroSnapshot, runs int) ([]byte, error) {
	log := logger.FromContext(ctx).With("key", key)

	if payload, ok := s.lookup(ctx, key); ok {
		metrics.DailyCacheLookups.WithLabelValues(metrics.LookupHit).Inc()
		log.Debug(LogMsgDailyResultServed)
		return payload, nil
	}
	metrics.DailyCacheLookups.WithLabelValues(metrics.LookupMiss).Inc()

	result, err := s.run(ctx, hero, dateKey, runs)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode daily result: %w", err)
	}

	log.Info(LogMsgDailyResultRan, "runs", runs, "victories", result.Victories, "xp_total", result.XPTotal)
	return s.persist(ctx, key, payload), nil
}

// lookup reads a stored payload. Storage failures and undecodable payloads
// are logged and reported as a miss.
func (s *service) lookup(ctx context.Context, key string) ([]byte, bool) {
	log := logger.FromContext(ctx)

	payload, found, err := s.store.Get(ctx, key)
	if err != nil {
		metrics.StorageErrors.WithLabelValues(metrics.OperationGet).Inc()
		log.Warn(LogMsgStorageGetFailed, "key", key, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	if !decodable(payload) {
		log.Warn(LogMsgCorruptPayload, "key", key)
		return nil, false
	}
	return payload, true
}

// persist stores the payload and returns the payload every caller should
// see. With an AtomicStore an earlier write by another process wins.
func (s *service) persist(ctx context.Context, key string, payload []byte) []byte {
	log := logger.FromContext(ctx)

	atomicStore, ok := s.store.(AtomicStore)
	if !ok {
		if err := s.store.Set(ctx, key, payload); err != nil {
			metrics.StorageErrors.WithLabelValues(metrics.OperationSet).Inc()
			log.Warn(LogMsgStorageSetFailed, "key", key, "error", err)
		}
		return payload
	}

	stored, written, err := atomicStore.SetIfAbsent(ctx, key, payload)
	if err != nil {
		metrics.StorageErrors.WithLabelValues(metrics.OperationSet).Inc()
		log.Warn(LogMsgStorageSetFailed, "key", key, "error", err)
		return payload
	}
	if written {
		return payload
	}
	if decodable(stored) {
		log.Info(LogMsgLostWriteRace, "key", key)
		return stored
	}

	// the existing entry is corrupt, replace it
	if err := s.store.Set(ctx, key, payload); err != nil {
		metrics.StorageErrors.WithLabelValues(metrics.OperationSet).Inc()
		log.Warn(LogMsgStorageSetFailed, "key", key, "error", err)
	}
	return payload
}

func decodable(payload []byte) bool {
	var r domain.DailyResult
	return json.Unmarshal(payload, &r) == nil
}

func (s *service) run(ctx context.Context, hero domain.HeroSnapshot, dateKey string, runs int) (*domain.DailyResult, error) {
	result := &domain.DailyResult{
		HeroID:  hero.ID,
		DateKey: dateKey,
		Runs:    make([]domain.CombatResult, 0, runs),
	}

	roster := mission.RosterForLevel(hero.Level())
	for i := 0; i < runs; i++ {
		res, err := s.missions.AutoResolveCombat(ctx, hero, roster)
		if err != nil {
			return nil, fmt.Errorf("daily run %d: %w", i+1, err)
		}

		result.Runs = append(result.Runs, *res)
		result.XPTotal += res.XPGained
		result.GoldTotal += res.GoldGained
		if res.Victory {
			result.Victories++
		}
	}

	return result, nil
}
