// Package engine orchestrates one aggregation run: fetch every
// configured source, normalize and dedupe, cross-reference today's
// schedule, diff against the previous snapshot, build the report, and
// persist the merged state.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"injury-report-service/internal/diff"
	"injury-report-service/internal/domain"
	"injury-report-service/internal/logging"
	"injury-report-service/internal/metrics"
	"injury-report-service/internal/normalize"
	"injury-report-service/internal/report"
	"injury-report-service/internal/schedule"
	"injury-report-service/internal/sources"
	"injury-report-service/internal/state"
)

// Options wires an Engine. Schedule may be nil when no provider is
// configured; runs then produce reports without game annotations.
type Options struct {
	Sports       []domain.Sport
	Sources      []sources.Source
	Normalizer   *normalize.Normalizer
	Schedule     schedule.Provider
	Store        state.Store
	Metrics      *metrics.Recorder
	Clock        clockwork.Clock
	Logger       *slog.Logger
	FetchTimeout time.Duration
}

type Engine struct {
	sports       []domain.Sport
	sources      []sources.Source
	normalizer   *normalize.Normalizer
	schedule     schedule.Provider
	store        state.Store
	metrics      *metrics.Recorder
	clock        clockwork.Clock
	logger       *slog.Logger
	fetchTimeout time.Duration
}

func New(opts Options) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = normalize.NewNormalizer(nil, opts.Logger)
	}
	store := opts.Store
	if store == nil {
		store = state.NewMemoryStore()
	}
	return &Engine{
		sports:       opts.Sports,
		sources:      opts.Sources,
		normalizer:   normalizer,
		schedule:     opts.Schedule,
		store:        store,
		metrics:      opts.Metrics,
		clock:        clock,
		logger:       opts.Logger,
		fetchTimeout: opts.FetchTimeout,
	}
}

type sourceOutcome struct {
	result  domain.SourceResult
	records []domain.InjuryRecord
}

// Run executes one aggregation cycle. Individual source failures are
// folded into the report rather than aborting; the only terminal error
// is a failed state save, and even then the report is returned so
// callers can still render it.
func (e *Engine) Run(ctx context.Context) (*report.Report, error) {
	started := e.clock.Now()
	now := started.UTC()

	previous, err := e.store.Load(ctx)
	if err != nil {
		logging.Warn(e.logger, "state load failed, comparing against empty snapshot", "error", err)
		previous = state.NewSnapshot()
	}

	outcomes := e.fetchAll(ctx, now)

	var records []domain.InjuryRecord
	results := make([]domain.SourceResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		results = append(results, outcome.result)
		records = append(records, outcome.records...)
	}
	records = normalize.Dedupe(records)

	slates, degraded := e.fetchSlates(ctx, now)
	var allMatchups []domain.Matchup
	for _, slate := range slates {
		allMatchups = append(allMatchups, slate...)
	}
	records = schedule.Annotate(records, allMatchups)

	diffed := diff.Detect(records, previous, e.sports, now)
	e.recordChangeMetrics(diffed.Changes)

	rep := report.Build(report.Input{
		Sports:           e.sports,
		Records:          records,
		Diff:             diffed,
		Slates:           slates,
		Sources:          results,
		ScheduleDegraded: degraded,
	}, now)

	runErr := e.persist(ctx, previous, records, now)
	e.metrics.RecordRunCycle(e.clock.Now().Sub(started), runErr)

	logging.Info(e.logger, "run complete",
		logging.FieldCount, len(records),
		"changes", len(diffed.Changes),
		"failed_sources", len(rep.FailedSources()),
		logging.FieldDurationMS, e.clock.Now().Sub(started).Milliseconds())
	return rep, runErr
}

// fetchAll runs every source concurrently under the per-fetch timeout
// and normalizes each origin's payload as it lands.
func (e *Engine) fetchAll(ctx context.Context, now time.Time) []sourceOutcome {
	outcomes := make([]sourceOutcome, len(e.sources))

	var wg sync.WaitGroup
	for i, src := range e.sources {
		wg.Add(1)
		go func(i int, src sources.Source) {
			defer wg.Done()
			outcomes[i] = e.fetchOne(ctx, src, now)
		}(i, src)
	}
	wg.Wait()

	return outcomes
}

func (e *Engine) fetchOne(ctx context.Context, src sources.Source, now time.Time) sourceOutcome {
	fctx := ctx
	cancel := func() {}
	if e.fetchTimeout > 0 {
		fctx, cancel = context.WithTimeout(ctx, e.fetchTimeout)
	}
	defer cancel()

	started := e.clock.Now()
	observations, err := src.Fetch(fctx)
	elapsed := e.clock.Now().Sub(started)

	e.metrics.RecordSourceFetch(src.Origin(), string(src.Sport()), elapsed, err)

	result := domain.SourceResult{
		Origin:   src.Origin(),
		Sport:    src.Sport(),
		Duration: elapsed,
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s", sources.ErrSourceTimeout, elapsed.Round(time.Millisecond))
		}
		result.Error = err.Error()
		logging.Warn(e.logger, "source fetch failed",
			logging.FieldOrigin, src.Origin(),
			logging.FieldSport, string(src.Sport()),
			"error", err)
		return sourceOutcome{result: result}
	}

	records, skipped := e.normalizer.Normalize(observations, src.Sport(), src.Origin(), now)
	e.metrics.RecordSkippedObservations(src.Origin(), skipped)

	result.Succeeded = true
	result.RecordCount = len(records)
	result.SkippedCount = skipped
	return sourceOutcome{result: result, records: records}
}

// fetchSlates asks the schedule provider for each sport's slate.
// Failures degrade: the run continues without annotations for that
// sport and the report carries the degraded flag.
func (e *Engine) fetchSlates(ctx context.Context, now time.Time) (map[domain.Sport][]domain.Matchup, bool) {
	if e.schedule == nil {
		return nil, false
	}

	slates := make(map[domain.Sport][]domain.Matchup, len(e.sports))
	degraded := false
	for _, sport := range e.sports {
		matchups, err := e.schedule.Matchups(ctx, sport, now)
		if err != nil {
			degraded = true
			logging.Warn(e.logger, "schedule unavailable, skipping game annotations",
				logging.FieldSport, string(sport), "error", err)
			continue
		}
		slates[sport] = matchups
	}
	return slates, degraded
}

func (e *Engine) recordChangeMetrics(changes []domain.StatusChange) {
	counts := make(map[domain.Sport]int)
	for _, c := range changes {
		counts[c.Sport]++
	}
	for sport, count := range counts {
		e.metrics.RecordStatusChanges(string(sport), count)
	}
}

// persist merges this run's records over the previous snapshot and
// saves. Previous entries for players not seen this run are kept, so a
// flaky source does not erase history.
func (e *Engine) persist(ctx context.Context, previous state.Snapshot, records []domain.InjuryRecord, now time.Time) error {
	next := state.Snapshot{SavedAt: now, Players: make(map[string]state.Entry, previous.Len()+len(records))}
	for key, entry := range previous.Players {
		next.Players[key] = entry
	}
	for _, record := range records {
		next.Players[record.Player.Key()] = state.Entry{
			Player:      record.Player,
			Sport:       record.Sport,
			Status:      record.Status,
			Description: record.Description,
			UpdatedAt:   record.UpdatedAt,
			Source:      record.Source,
			LastSeen:    now,
		}
	}

	if err := e.store.Save(ctx, next); err != nil {
		e.metrics.RecordStateSaveError()
		return fmt.Errorf("persist state snapshot: %w", err)
	}
	return nil
}
