package journey

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/legwise/legwise/internal/catalog"
)

const instrumentationName = "github.com/legwise/legwise/internal/journey"

// PlannerConfig holds configuration for the planner.
type PlannerConfig struct {
	// Catalog is the read-only leg table. Defaults to catalog.Default().
	Catalog *catalog.Catalog

	// Policy holds the scoring knobs. Zero fields take their defaults.
	Policy Policy

	// Logger for planner operations.
	Logger zerolog.Logger

	// Tracer overrides the global tracer, mainly for tests.
	Tracer trace.Tracer
}

// Query selects and orders combinations.
type Query struct {
	// Strategy is fastest, cheapest or smart. Anything else means smart.
	Strategy string

	// Modes is the allow-list. Nil allows every mode.
	Modes Modes

	// TimeWeight overrides the policy's smart weight when positive.
	TimeWeight float64

	// DepartAt requests an itinerary when non-zero.
	DepartAt time.Time
}

// Result is one ranked combination.
type Result struct {
	Combination
	Rank         int
	DurationText string
	Itinerary    *Itinerary
}

// Planner runs the enumerate, aggregate, filter and rank pipeline over a
// fixed catalog. It holds no mutable state and is safe for concurrent use.
type Planner struct {
	catalog *catalog.Catalog
	policy  Policy
	logger  zerolog.Logger
	tracer  trace.Tracer

	searches metric.Int64Counter
	results  metric.Int64Histogram
}

// NewPlanner creates a new planner.
func NewPlanner(cfg PlannerConfig) *Planner {
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	policy := cfg.Policy
	defaults := DefaultPolicy()
	if policy.InterchangeBuffer == 0 {
		policy.InterchangeBuffer = defaults.InterchangeBuffer
	}
	if policy.SmartTimeWeight == 0 {
		policy.SmartTimeWeight = defaults.SmartTimeWeight
	}
	if policy.ResultLimit == 0 {
		policy.ResultLimit = defaults.ResultLimit
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}

	p := &Planner{
		catalog: cat,
		policy:  policy,
		logger:  cfg.Logger,
		tracer:  tracer,
	}

	// Instrument creation only fails on invalid names; a failed instrument
	// leaves the planner unmetered.
	meter := otel.Meter(instrumentationName)
	if c, err := meter.Int64Counter("journey.search.total",
		metric.WithDescription("Number of journey searches"),
		metric.WithUnit("{search}"),
	); err == nil {
		p.searches = c
	}
	if h, err := meter.Int64Histogram("journey.search.results",
		metric.WithDescription("Combinations returned per search"),
		metric.WithUnit("{combination}"),
	); err == nil {
		p.results = h
	}

	return p
}

// Catalog returns the planner's catalog. Callers must not modify it.
func (p *Planner) Catalog() *catalog.Catalog {
	return p.catalog
}

// Policy returns the effective scoring policy.
func (p *Planner) Policy() Policy {
	return p.policy
}

// Combinations enumerates and scores every first-mile and last-mile pair, in
// enumeration order.
func (p *Planner) Combinations() []Combination {
	pairs := Enumerate(p.catalog.FirstMile, p.catalog.LastMile, &p.catalog.MainLeg)

	combos := make([]Combination, 0, len(pairs))
	for _, pair := range pairs {
		combos = append(combos, Combination{
			Pair:  pair,
			ID:    pair.CompositeID(),
			Stats: Aggregate(pair.FirstMile, pair.MainLeg, pair.LastMile, p.catalog.Baseline, p.policy),
		})
	}
	return combos
}

// Search returns the best combinations for q. An empty result is not an
// error. The only error is a cancelled context.
func (p *Planner) Search(ctx context.Context, q Query) ([]Result, error) {
	weight := q.TimeWeight
	if weight <= 0 {
		weight = p.policy.SmartTimeWeight
	}
	strategy := ParseStrategy(q.Strategy, weight)

	ctx, span := p.tracer.Start(ctx, "journey.Search",
		trace.WithAttributes(
			attribute.String("journey.strategy", strategy.Name()),
			attribute.String("journey.modes", q.Modes.String()),
		),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := p.Combinations()
	allowed := Filter(all, q.Modes)
	ranked := Rank(allowed, strategy, p.policy.ResultLimit)

	results := make([]Result, 0, len(ranked))
	for i, c := range ranked {
		r := Result{
			Combination:  c,
			Rank:         i + 1,
			DurationText: FormatDuration(c.Time),
		}
		if !q.DepartAt.IsZero() {
			it := BuildItinerary(c, q.DepartAt)
			r.Itinerary = &it
		}
		results = append(results, r)
	}

	span.SetAttributes(
		attribute.Int("journey.combinations", len(all)),
		attribute.Int("journey.allowed", len(allowed)),
		attribute.Int("journey.results", len(results)),
	)

	attrs := metric.WithAttributes(attribute.String("strategy", strategy.Name()))
	if p.searches != nil {
		p.searches.Add(ctx, 1, attrs)
	}
	if p.results != nil {
		p.results.Record(ctx, int64(len(results)), attrs)
	}

	p.logger.Debug().
		Str("strategy", strategy.Name()).
		Str("modes", q.Modes.String()).
		Int("combinations", len(all)).
		Int("allowed", len(allowed)).
		Int("results", len(results)).
		Msg("journey search")

	return results, nil
}
