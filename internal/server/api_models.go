package server

import (
	"fmt"
	"net/url"

	"github.com/domainlens/domainlens/internal/model"
)

// sslStateRequest mirrors model.SSLState with pointer fields so missing
// values are distinguishable from zero values during validation.
type sslStateRequest struct {
	Valid *bool   `json:"valid"`
	Error *string `json:"error"`
}

// reportRequest is the POST /reports body. Every non-derived field is
// required; pointers let validation detect absence. globalRank is derived by
// the pipeline and ignored if supplied.
type reportRequest struct {
	DomainName              *string          `json:"domainName"`
	DoesAllowAnalyzeContent *bool            `json:"doesAllowAnalyzeContent"`
	IsParkedDomain          *bool            `json:"isParkedDomain"`
	IsKnownRegistrar        *bool            `json:"isKnownRegistrar"`
	IsDNSBlacklisted        *bool            `json:"isDnsBlackListed"`
	SupportsCSP             *bool            `json:"supportsCSP"`
	WhoisHidden             *bool            `json:"whoisHidden"`
	ImplementsReferrerPol   *bool            `json:"implementsReferrerPolicy"`
	DoesLoadExternalObjects *bool            `json:"doesLoadExternalObjects"`
	IsAbnormalURL           *bool            `json:"isAbnormalUrl"`
	URLTooLong              *bool            `json:"urlTooLong"`
	IsProtectedClickjacking *bool            `json:"isProtectedAgaintsClickJacking"`
	IsURLShortened          *bool            `json:"isUrlShortened"`
	DoesSupportHSTS         *bool            `json:"doesSupportHSTS"`
	IsProtectedAgainstXSS   *bool            `json:"isProtectedAgainstXSS"`
	HasFavicon              *bool            `json:"hasFavIcon"`
	DomainAge               *int64           `json:"domainAge"`
	SSLState                *sslStateRequest `json:"sslState"`
	RedirectsTo             *string          `json:"redirectsTo"`
}

// validate checks the schema and returns the first failure only, matching
// the validation collaborator's contract.
func (r *reportRequest) validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"domainName", r.DomainName != nil},
		{"doesAllowAnalyzeContent", r.DoesAllowAnalyzeContent != nil},
		{"isParkedDomain", r.IsParkedDomain != nil},
		{"isKnownRegistrar", r.IsKnownRegistrar != nil},
		{"isDnsBlackListed", r.IsDNSBlacklisted != nil},
		{"supportsCSP", r.SupportsCSP != nil},
		{"whoisHidden", r.WhoisHidden != nil},
		{"implementsReferrerPolicy", r.ImplementsReferrerPol != nil},
		{"doesLoadExternalObjects", r.DoesLoadExternalObjects != nil},
		{"isAbnormalUrl", r.IsAbnormalURL != nil},
		{"urlTooLong", r.URLTooLong != nil},
		{"isProtectedAgaintsClickJacking", r.IsProtectedClickjacking != nil},
		{"isUrlShortened", r.IsURLShortened != nil},
		{"doesSupportHSTS", r.DoesSupportHSTS != nil},
		{"isProtectedAgainstXSS", r.IsProtectedAgainstXSS != nil},
		{"hasFavIcon", r.HasFavicon != nil},
		{"domainAge", r.DomainAge != nil},
		{"sslState", r.SSLState != nil},
		{"redirectsTo", r.RedirectsTo != nil},
	}
	for _, f := range required {
		if !f.ok {
			return fmt.Errorf("%q is required", f.name)
		}
	}
	if *r.DomainName == "" {
		return fmt.Errorf("%q is not allowed to be empty", "domainName")
	}
	if *r.DomainAge < 0 {
		return fmt.Errorf("%q must be greater than or equal to 0", "domainAge")
	}
	if r.SSLState.Valid == nil {
		return fmt.Errorf("%q is required", "sslState.valid")
	}
	if *r.RedirectsTo != "" {
		if _, err := url.ParseRequestURI(*r.RedirectsTo); err != nil {
			return fmt.Errorf("%q must be a valid uri", "redirectsTo")
		}
	}
	return nil
}

// toBundle converts a validated request into the pipeline's signal bundle.
func (r *reportRequest) toBundle() *model.SignalBundle {
	bundle := &model.SignalBundle{
		DomainName:              *r.DomainName,
		DoesAllowAnalyzeContent: *r.DoesAllowAnalyzeContent,
		IsParkedDomain:          *r.IsParkedDomain,
		IsKnownRegistrar:        *r.IsKnownRegistrar,
		IsDNSBlacklisted:        *r.IsDNSBlacklisted,
		SupportsCSP:             *r.SupportsCSP,
		WhoisHidden:             *r.WhoisHidden,
		ImplementsReferrerPol:   *r.ImplementsReferrerPol,
		DoesLoadExternalObjects: *r.DoesLoadExternalObjects,
		IsAbnormalURL:           *r.IsAbnormalURL,
		URLTooLong:              *r.URLTooLong,
		IsProtectedClickjacking: *r.IsProtectedClickjacking,
		IsURLShortened:          *r.IsURLShortened,
		DoesSupportHSTS:         *r.DoesSupportHSTS,
		IsProtectedAgainstXSS:   *r.IsProtectedAgainstXSS,
		HasFavicon:              *r.HasFavicon,
		DomainAge:               *r.DomainAge,
		RedirectsTo:             *r.RedirectsTo,
	}
	bundle.SSLState.Valid = *r.SSLState.Valid
	if r.SSLState.Error != nil {
		bundle.SSLState.Error = *r.SSLState.Error
	}
	return bundle
}
