package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/domainlens/domainlens/internal/app"
	"github.com/domainlens/domainlens/internal/model"
	"github.com/domainlens/domainlens/internal/score"
	"github.com/domainlens/domainlens/internal/testutil"
)

const yearMS = int64(1000) * 60 * 60 * 24 * 365

func newOrchestrator(ranks map[string]int) (*app.Orchestrator, *testutil.StaticRankSource) {
	src := &testutil.StaticRankSource{Ranks: ranks}
	return app.NewOrchestrator(src, score.DefaultWeights(), &testutil.DummyLogger{}), src
}

func requestBundle(domain string) *model.SignalBundle {
	return &model.SignalBundle{
		DomainName:              domain,
		DomainAge:               3 * yearMS,
		SSLState:                model.SSLState{Valid: true},
		DoesAllowAnalyzeContent: true,
	}
}

func TestGenerateReport_UnrankedDomain(t *testing.T) {
	t.Parallel()
	orch, src := newOrchestrator(nil)

	report, err := orch.GenerateReport(context.Background(), requestBundle("quiet.example"))
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if src.CallCount() != 1 {
		t.Errorf("expected exactly one rank lookup, got %d", src.CallCount())
	}

	// 100 + 50 (3yr) + 10 (ssl) -> clamp to 100.
	if report.Score != 100 {
		t.Errorf("expected score 100, got %d", report.Score)
	}
	if !report.Highlights.Positive.Has(model.LabelDomainAgeSomeYears) {
		t.Errorf("expected age label, got %v", report.Highlights.Positive.Labels())
	}
}

func TestGenerateReport_Top500kCeiling(t *testing.T) {
	t.Parallel()
	orch, _ := newOrchestrator(map[string]int{"popular.example": 400_000})

	// Signals that would normally drag the score down hard.
	bundle := requestBundle("popular.example")
	bundle.DomainAge = 0
	bundle.SSLState = model.SSLState{Valid: false}
	bundle.IsParkedDomain = true

	report, err := orch.GenerateReport(context.Background(), bundle)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if report.Score != 100 {
		t.Errorf("the 500k enrichment ceiling must hold, got %d", report.Score)
	}
	for _, label := range []model.Label{
		model.LabelRankedTop500k,
		model.LabelSafeByGoogleBrowsing,
		model.LabelSafeDNSFilter,
		model.LabelRegistrarGoodReputation,
	} {
		if !report.Highlights.Positive.Has(label) {
			t.Errorf("expected enrichment label %s in final set", label)
		}
	}
	if report.Highlights.Negative.Has(model.LabelDomainParked) {
		t.Error("enrichment clears the parked flag inside the 500k band")
	}
}

func TestGenerateReport_Top100kBadgeSwap(t *testing.T) {
	t.Parallel()
	orch, _ := newOrchestrator(map[string]int{"hot.example": 60_000})

	report, err := orch.GenerateReport(context.Background(), requestBundle("hot.example"))
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if !report.Highlights.Positive.Has(model.LabelRankedTop100k) {
		t.Error("expected the top-100k badge inside the 100k band")
	}
	// The rank badges are mutually exclusive; the swap must survive the
	// merge of seeded and derived labels.
	if report.Highlights.Positive.Has(model.LabelRankedTop500k) {
		t.Errorf("top-500k badge must be absent inside the 100k band, got %v",
			report.Highlights.Positive.Labels())
	}
	if report.Highlights.Positive.Has(model.LabelRankedTop1M) {
		t.Errorf("top-1M badge must be absent inside the 100k band, got %v",
			report.Highlights.Positive.Labels())
	}
	if report.Score != 100 {
		t.Errorf("the enrichment ceiling applies inside the 100k band, got %d", report.Score)
	}
}

func TestGenerateReport_LookupFailureAborts(t *testing.T) {
	t.Parallel()
	src := &testutil.StaticRankSource{Err: testutil.ErrLookupFailed}
	orch := app.NewOrchestrator(src, score.DefaultWeights(), &testutil.DummyLogger{})

	report, err := orch.GenerateReport(context.Background(), requestBundle("any.example"))
	if !errors.Is(err, testutil.ErrLookupFailed) {
		t.Fatalf("expected the lookup failure to propagate, got %v", err)
	}
	if report != nil {
		t.Error("no partial report on failure")
	}
}
