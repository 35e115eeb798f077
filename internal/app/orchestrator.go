// Package app wires the report pipeline: rank lookup, signal enrichment,
// highlight derivation and score calculation.
package app

import (
	"context"
	"fmt"

	"github.com/domainlens/domainlens/internal/deriver"
	"github.com/domainlens/domainlens/internal/enrich"
	"github.com/domainlens/domainlens/internal/logging"
	"github.com/domainlens/domainlens/internal/model"
	"github.com/domainlens/domainlens/internal/rank"
	"github.com/domainlens/domainlens/internal/score"
)

// Orchestrator runs the full evaluation pipeline for one signal bundle at a
// time. It holds no per-request state; a bundle is owned by exactly one
// GenerateReport call.
type Orchestrator struct {
	ranks      rank.Source
	engine     *deriver.Engine
	calculator *score.Calculator
	logger     logging.Logger
}

// NewOrchestrator builds an Orchestrator over the given rank source and
// score weights.
func NewOrchestrator(ranks rank.Source, weights score.Weights, logger logging.Logger) *Orchestrator {
	l := logger.With(logging.Field{Key: "component", Value: "orchestrator"})
	return &Orchestrator{
		ranks:      ranks,
		engine:     deriver.NewEngine(logger),
		calculator: score.NewCalculator(weights),
		logger:     l,
	}
}

// GenerateReport resolves the domain's rank, enriches the bundle, derives
// highlights and details, and computes the final score. The rank lookup is
// the only suspension point; ctx cancellation abandons it and the request
// produces no partial result.
func (o *Orchestrator) GenerateReport(ctx context.Context, bundle *model.SignalBundle) (*model.Report, error) {
	resolved, err := o.ranks.Resolve(ctx, bundle.DomainName)
	if err != nil {
		return nil, fmt.Errorf("resolving rank for %q: %w", bundle.DomainName, err)
	}

	enrich.Apply(bundle, resolved)

	highlights, details := o.engine.Run(bundle)

	// The 500k enrichment band sets a pre-computed ceiling that nothing
	// downstream may lower.
	finalScore := o.calculator.Compute(bundle)
	if bundle.PreComputedScore != nil && *bundle.PreComputedScore == score.BaseScore {
		finalScore = score.BaseScore
	}

	o.logger.Info("report generated",
		logging.Field{Key: "domain", Value: bundle.DomainName},
		logging.Field{Key: "rank", Value: bundle.GlobalRank},
		logging.Field{Key: "score", Value: finalScore})

	return &model.Report{
		Highlights:  highlights,
		HTMLDetails: details,
		Score:       finalScore,
	}, nil
}
