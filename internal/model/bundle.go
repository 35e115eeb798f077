package model

import "encoding/json"

// SSLState describes the certificate check outcome for a site. Error is only
// populated when Valid is false.
type SSLState struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// SignalBundle is the full set of website attributes submitted for one
// evaluation. The instance is exclusively owned by the pipeline for the
// duration of a single request; nothing is shared across requests.
//
// GlobalRank is derived: it is filled in by the rank lookup before
// enrichment. 0 means "not ranked in the top 1,000,000" and is a sentinel,
// never a real rank.
type SignalBundle struct {
	DomainName string `json:"domainName"`

	DoesAllowAnalyzeContent bool `json:"doesAllowAnalyzeContent"`
	IsParkedDomain          bool `json:"isParkedDomain"`
	IsKnownRegistrar        bool `json:"isKnownRegistrar"`
	IsDNSBlacklisted        bool `json:"isDnsBlackListed"`
	SupportsCSP             bool `json:"supportsCSP"`
	WhoisHidden             bool `json:"whoisHidden"`
	ImplementsReferrerPol   bool `json:"implementsReferrerPolicy"`
	DoesLoadExternalObjects bool `json:"doesLoadExternalObjects"`
	IsAbnormalURL           bool `json:"isAbnormalUrl"`
	URLTooLong              bool `json:"urlTooLong"`
	// The wire name carries the original schema's spelling.
	IsProtectedClickjacking bool `json:"isProtectedAgaintsClickJacking"`
	IsURLShortened          bool `json:"isUrlShortened"`
	DoesSupportHSTS         bool `json:"doesSupportHSTS"`
	IsProtectedAgainstXSS   bool `json:"isProtectedAgainstXSS"`
	HasFavicon              bool `json:"hasFavIcon"`

	// DomainAge is the registration age in milliseconds.
	DomainAge   int64    `json:"domainAge"`
	GlobalRank  int      `json:"globalRank"`
	SSLState    SSLState `json:"sslState"`
	RedirectsTo string   `json:"redirectsTo"`

	// Seeded by enrichment, merged into the final highlight sets by the
	// deriver engine.
	PredefinedHighlights Highlights `json:"-"`

	// PreComputedScore, once set to 100 by a rank short-circuit, is a ceiling
	// no later stage lowers.
	PreComputedScore *int `json:"-"`
}

// LabelSet is an insertion-ordered set of highlight labels. Duplicate adds
// are absorbed; order is preserved so structurally identical bundles produce
// byte-identical JSON.
type LabelSet struct {
	labels []Label
	seen   map[Label]struct{}
}

// Add inserts a label unless already present.
func (s *LabelSet) Add(l Label) {
	if l == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[Label]struct{})
	}
	if _, ok := s.seen[l]; ok {
		return
	}
	s.seen[l] = struct{}{}
	s.labels = append(s.labels, l)
}

// Remove deletes a label if present, preserving the order of the rest.
func (s *LabelSet) Remove(l Label) {
	if s.seen == nil {
		return
	}
	if _, ok := s.seen[l]; !ok {
		return
	}
	delete(s.seen, l)
	for i, have := range s.labels {
		if have == l {
			s.labels = append(s.labels[:i], s.labels[i+1:]...)
			break
		}
	}
}

// Has reports whether the label is in the set.
func (s *LabelSet) Has(l Label) bool {
	_, ok := s.seen[l]
	return ok
}

// Len returns the number of labels in the set.
func (s *LabelSet) Len() int { return len(s.labels) }

// Labels returns the labels in insertion order. The returned slice is a copy.
func (s *LabelSet) Labels() []Label {
	out := make([]Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// MarshalJSON encodes the set as a JSON array in insertion order.
func (s LabelSet) MarshalJSON() ([]byte, error) {
	if s.labels == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.labels)
}

// UnmarshalJSON decodes a JSON array into the set, de-duplicating.
func (s *LabelSet) UnmarshalJSON(data []byte) error {
	var labels []Label
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*s = LabelSet{}
	for _, l := range labels {
		s.Add(l)
	}
	return nil
}

// Highlights groups the positive and negative label sets of one report.
type Highlights struct {
	Positive LabelSet `json:"positive"`
	Negative LabelSet `json:"negative"`
}

// Detail bucket keys. Every explanatory paragraph lands in exactly one.
const (
	BucketCompanyEvaluation = "companyEvaluation"
	BucketTechnicalAnalysis = "technicalAnalysis"
	BucketDetailedAnalysis  = "detailedAnalysis"
)

// HTMLDetails holds the categorized explanatory paragraphs, ordered by the
// position of the contributing rule in the pipeline.
type HTMLDetails struct {
	CompanyEvaluation []string `json:"companyEvaluation"`
	TechnicalAnalysis []string `json:"technicalAnalysis"`
	DetailedAnalysis  []string `json:"detailedAnalysis"`
}

// Append adds a paragraph to the named bucket. Unknown bucket names are
// dropped; the rule table is closed so this only happens on programmer error.
func (d *HTMLDetails) Append(bucket, paragraph string) {
	switch bucket {
	case BucketCompanyEvaluation:
		d.CompanyEvaluation = append(d.CompanyEvaluation, paragraph)
	case BucketTechnicalAnalysis:
		d.TechnicalAnalysis = append(d.TechnicalAnalysis, paragraph)
	case BucketDetailedAnalysis:
		d.DetailedAnalysis = append(d.DetailedAnalysis, paragraph)
	}
}

// Report is the terminal value returned for one request. It is assembled
// once and never mutated afterwards.
type Report struct {
	Highlights  Highlights  `json:"highlights"`
	HTMLDetails HTMLDetails `json:"htmlDetails"`
	Score       int         `json:"score"`
}
