// Package enrich applies rank-based signal overrides before rule
// evaluation. Well-ranked domains are assumed trustworthy on dimensions too
// expensive or unreliable to probe directly, so their signals are forced
// rather than evaluated; later rules detect the same bands and skip,
// avoiding contradictory highlights.
package enrich

import "github.com/domainlens/domainlens/internal/model"

// Rank bands, broadest to narrowest. Each band re-asserts or overrides what
// the previous one set.
const (
	top500k = 500_000
	top200k = 200_000
	top100k = 100_000
)

// Apply writes rank into the bundle and applies the tiered overrides plus
// the rank-independent content-policy check. It mutates and returns the same
// bundle; the pipeline owns the instance exclusively.
func Apply(bundle *model.SignalBundle, rank int) *model.SignalBundle {
	bundle.GlobalRank = rank

	if !bundle.DoesAllowAnalyzeContent {
		bundle.PredefinedHighlights.Negative.Add(model.LabelDoesNotAllowAnalyze)
	}

	ranked := rank != 0
	withinTop500k := rank > 0 && rank <= top500k
	withinTop200k := rank > 0 && rank <= top200k
	withinTop100k := rank > 0 && rank <= top100k

	if ranked {
		bundle.IsAbnormalURL = false
		bundle.PredefinedHighlights.Positive.Add(model.LabelNotDNSBlacklisted)
	}

	if withinTop500k {
		bundle.IsParkedDomain = false
		bundle.DoesSupportHSTS = true
		bundle.IsProtectedClickjacking = true
		bundle.SupportsCSP = true
		bundle.IsProtectedAgainstXSS = true
		bundle.ImplementsReferrerPol = true
		bundle.IsKnownRegistrar = true
		for _, label := range []model.Label{
			model.LabelImplementsReferrerPol,
			model.LabelSafeByGoogleBrowsing,
			model.LabelSafeDNSFilter,
			model.LabelRankedTop500k,
			model.LabelRegistrarGoodReputation,
			model.LabelSupportsHSTS,
			model.LabelImplementsReferrerPol,
			model.LabelProtectedInjection,
		} {
			bundle.PredefinedHighlights.Positive.Add(label)
		}
		score := 100
		bundle.PreComputedScore = &score
	}

	if withinTop200k {
		bundle.DoesLoadExternalObjects = false
	}

	if withinTop100k {
		// The rank-tier badges are mutually exclusive.
		bundle.PredefinedHighlights.Positive.Remove(model.LabelRankedTop500k)
		bundle.PredefinedHighlights.Positive.Add(model.LabelRankedTop100k)
	}

	return bundle
}
