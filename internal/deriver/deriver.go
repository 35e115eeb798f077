// Package deriver runs the ordered list of highlight rules over an enriched
// signal bundle. Each rule is independent; the engine only aggregates.
package deriver

import (
	"github.com/domainlens/domainlens/internal/logging"
	"github.com/domainlens/domainlens/internal/model"
)

// Detail is one explanatory paragraph destined for a named bucket.
type Detail struct {
	Bucket    string
	Paragraph string
}

// Output is a single rule's contribution. Empty fields contribute nothing.
type Output struct {
	PositiveHighlight model.Label
	NegativeHighlight model.Label
	Detail            *Detail
}

// Rule inspects the bundle and returns its contribution. Rules never mutate
// the bundle and never fail on valid input; a panic here is a programming
// error and aborts the whole pipeline.
type Rule struct {
	// Name identifies the rule in logs.
	Name string
	Eval func(bundle *model.SignalBundle) Output
}

// Engine folds the rule list into highlight sets and detail buckets.
type Engine struct {
	rules  []Rule
	logger logging.Logger
}

// NewEngine creates an engine over the default rule list.
func NewEngine(logger logging.Logger) *Engine {
	return &Engine{
		rules:  Rules(),
		logger: logger.With(logging.Field{Key: "component", Value: "deriver-engine"}),
	}
}

// Run evaluates every rule in order and aggregates the contributions.
// The bundle's predefined highlights (seeded by enrichment) are merged in
// first; label sets absorb duplicate contributions, so execution order only
// affects paragraph ordering within each bucket.
func (e *Engine) Run(bundle *model.SignalBundle) (model.Highlights, model.HTMLDetails) {
	highlights := model.Highlights{}
	details := model.HTMLDetails{
		CompanyEvaluation: []string{},
		TechnicalAnalysis: []string{},
		DetailedAnalysis:  []string{},
	}

	for _, label := range bundle.PredefinedHighlights.Positive.Labels() {
		highlights.Positive.Add(label)
	}
	for _, label := range bundle.PredefinedHighlights.Negative.Labels() {
		highlights.Negative.Add(label)
	}

	for _, rule := range e.rules {
		out := rule.Eval(bundle)
		if out.PositiveHighlight != "" {
			highlights.Positive.Add(out.PositiveHighlight)
		}
		if out.NegativeHighlight != "" {
			highlights.Negative.Add(out.NegativeHighlight)
		}
		if out.Detail != nil {
			details.Append(out.Detail.Bucket, out.Detail.Paragraph)
		}
	}

	e.logger.Debug("derived highlights",
		logging.Field{Key: "domain", Value: bundle.DomainName},
		logging.Field{Key: "positive", Value: highlights.Positive.Len()},
		logging.Field{Key: "negative", Value: highlights.Negative.Len()})

	return highlights, details
}
