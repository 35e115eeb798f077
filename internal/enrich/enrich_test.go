package enrich_test

import (
	"testing"

	"github.com/domainlens/domainlens/internal/enrich"
	"github.com/domainlens/domainlens/internal/model"
)

func baseBundle() *model.SignalBundle {
	return &model.SignalBundle{
		DomainName:              "example.com",
		DoesAllowAnalyzeContent: true,
		IsAbnormalURL:           true,
		DoesLoadExternalObjects: true,
	}
}

func TestApply_UnrankedLeavesSignalsAlone(t *testing.T) {
	t.Parallel()
	b := enrich.Apply(baseBundle(), 0)

	if b.GlobalRank != 0 {
		t.Errorf("expected rank 0, got %d", b.GlobalRank)
	}
	if !b.IsAbnormalURL {
		t.Error("abnormal-url flag should not be overridden for unranked domains")
	}
	if b.PreComputedScore != nil {
		t.Error("no pre-computed score expected for unranked domains")
	}
	if b.PredefinedHighlights.Positive.Len() != 0 {
		t.Errorf("no positive labels expected, got %v", b.PredefinedHighlights.Positive.Labels())
	}
}

func TestApply_AnyRankedDomainClearsAbnormalURL(t *testing.T) {
	t.Parallel()
	b := enrich.Apply(baseBundle(), 900_000)

	if b.IsAbnormalURL {
		t.Error("abnormal-url flag should be forced false for ranked domains")
	}
	if !b.PredefinedHighlights.Positive.Has(model.LabelNotDNSBlacklisted) {
		t.Error("expected NOT_DNS_BLACKLISTED seed label")
	}
	// Outside (0, 500k]: no boolean forcing, no pre-computed score.
	if b.PreComputedScore != nil {
		t.Error("no pre-computed score expected above 500k")
	}
	if b.DoesSupportHSTS {
		t.Error("HSTS should not be forced above 500k")
	}
}

func TestApply_Top500kForcesSignalsAndScore(t *testing.T) {
	t.Parallel()
	b := baseBundle()
	b.IsParkedDomain = true

	enrich.Apply(b, 500_000) // boundary is inclusive

	for name, got := range map[string]bool{
		"isParkedDomain cleared":   !b.IsParkedDomain,
		"doesSupportHSTS":          b.DoesSupportHSTS,
		"clickjacking protection":  b.IsProtectedClickjacking,
		"supportsCSP":              b.SupportsCSP,
		"XSS protection":           b.IsProtectedAgainstXSS,
		"implementsReferrerPolicy": b.ImplementsReferrerPol,
		"isKnownRegistrar":         b.IsKnownRegistrar,
	} {
		if !got {
			t.Errorf("expected %s to be forced", name)
		}
	}

	if b.PreComputedScore == nil || *b.PreComputedScore != 100 {
		t.Fatalf("expected pre-computed score 100, got %v", b.PreComputedScore)
	}

	for _, label := range []model.Label{
		model.LabelImplementsReferrerPol,
		model.LabelSafeByGoogleBrowsing,
		model.LabelSafeDNSFilter,
		model.LabelRankedTop500k,
		model.LabelRegistrarGoodReputation,
		model.LabelSupportsHSTS,
		model.LabelProtectedInjection,
		model.LabelNotDNSBlacklisted,
	} {
		if !b.PredefinedHighlights.Positive.Has(label) {
			t.Errorf("expected seeded label %s", label)
		}
	}
	// The referrer-policy label appears twice in the seed list; sets absorb it.
	if got := b.PredefinedHighlights.Positive.Len(); got != 8 {
		t.Errorf("expected 8 distinct labels, got %d: %v", got, b.PredefinedHighlights.Positive.Labels())
	}
}

func TestApply_Above500kBoundaryNotForced(t *testing.T) {
	t.Parallel()
	b := enrich.Apply(baseBundle(), 500_001)

	if b.PreComputedScore != nil {
		t.Error("500001 is outside the 500k band")
	}
	if b.DoesSupportHSTS {
		t.Error("HSTS should not be forced at 500001")
	}
}

func TestApply_Top200kClearsExternalObjects(t *testing.T) {
	t.Parallel()
	b := enrich.Apply(baseBundle(), 200_000)

	if b.DoesLoadExternalObjects {
		t.Error("external-objects flag should be forced false within 200k")
	}

	b2 := enrich.Apply(baseBundle(), 200_001)
	if !b2.DoesLoadExternalObjects {
		t.Error("external-objects flag should be untouched above 200k")
	}
}

func TestApply_Top100kSwapsRankBadge(t *testing.T) {
	t.Parallel()
	b := enrich.Apply(baseBundle(), 100_000)

	if b.PredefinedHighlights.Positive.Has(model.LabelRankedTop500k) {
		t.Error("top-500k badge should be removed within 100k")
	}
	if !b.PredefinedHighlights.Positive.Has(model.LabelRankedTop100k) {
		t.Error("top-100k badge expected within 100k")
	}

	b2 := enrich.Apply(baseBundle(), 100_001)
	if !b2.PredefinedHighlights.Positive.Has(model.LabelRankedTop500k) {
		t.Error("top-500k badge expected above 100k")
	}
	if b2.PredefinedHighlights.Positive.Has(model.LabelRankedTop100k) {
		t.Error("top-100k badge not expected above 100k")
	}
}

func TestApply_ContentPolicyIndependentOfRank(t *testing.T) {
	t.Parallel()
	b := baseBundle()
	b.DoesAllowAnalyzeContent = false

	enrich.Apply(b, 10)

	if !b.PredefinedHighlights.Negative.Has(model.LabelDoesNotAllowAnalyze) {
		t.Error("expected DOES_NOT_ALLOW_ANALYSE_CONTENT regardless of rank")
	}
}
