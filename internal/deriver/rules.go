package deriver

import (
	"fmt"
	"time"

	"github.com/domainlens/domainlens/internal/model"
)

// Age brackets, expressed in the bundle's unit (milliseconds).
const (
	oneYearMS    = int64(time.Hour/time.Millisecond) * 24 * 365
	twoYearsMS   = 2 * oneYearMS
	fiveYearsMS  = 5 * oneYearMS
	sevenYearsMS = 7 * oneYearMS
)

// Rank bands used by individual rules. Boundary conventions are part of each
// rule's contract and deliberately differ between rules; see the per-rule
// comments before "fixing" one.
const (
	rankTop500k = 500_000
	rankTop200k = 200_000
	rankTop100k = 100_000
)

// Rules returns the fixed, ordered rule list. Order affects only the
// paragraph ordering inside each detail bucket.
func Rules() []Rule {
	return []Rule{
		{Name: "rank-tier", Eval: rankTier},
		{Name: "domain-age", Eval: domainAge},
		{Name: "registrar", Eval: registrar},
		{Name: "ssl", Eval: ssl},
		{Name: "hsts", Eval: hsts},
		{Name: "redirects", Eval: redirects},
		{Name: "url-length", Eval: urlLength},
		{Name: "external-objects", Eval: externalObjects},
		{Name: "referrer-policy", Eval: referrerPolicy},
		{Name: "csp", Eval: csp},
		{Name: "parked-domain", Eval: parkedDomain},
		{Name: "whois-hidden", Eval: whoisHidden},
		{Name: "dns-blacklist", Eval: dnsBlacklist},
	}
}

// rankTier derives the rank badge. The tiers match the enrichment bands so
// the seeded badge and the derived badge always agree; the three badges are
// mutually exclusive in the final set. Unranked domains get nothing.
func rankTier(b *model.SignalBundle) Output {
	switch {
	case b.GlobalRank == 0:
		return Output{}
	case b.GlobalRank <= rankTop100k:
		return Output{PositiveHighlight: model.LabelRankedTop100k}
	case b.GlobalRank < rankTop500k:
		return Output{PositiveHighlight: model.LabelRankedTop500k}
	default:
		return Output{PositiveHighlight: model.LabelRankedTop1M}
	}
}

// domainAge always evaluates, regardless of rank. Brackets are closed-lower,
// open-upper: an age of exactly two years lands in the 2-5 year bracket.
func domainAge(b *model.SignalBundle) Output {
	var out Output
	switch {
	case b.DomainAge < oneYearMS:
		out.NegativeHighlight = model.LabelDomainAgeVeryYoung
		out.Detail = &Detail{Bucket: model.BucketDetailedAnalysis, Paragraph: msgAgeUnderOneYear}
	case b.DomainAge < twoYearsMS:
		out.NegativeHighlight = model.LabelDomainAgeVeryYoung
		out.Detail = &Detail{Bucket: model.BucketDetailedAnalysis, Paragraph: msgAgeOneToTwoYears}
	case b.DomainAge < fiveYearsMS:
		out.PositiveHighlight = model.LabelDomainAgeSomeYears
		out.Detail = &Detail{Bucket: model.BucketDetailedAnalysis, Paragraph: msgAgeTwoToFiveYears}
	case b.DomainAge < sevenYearsMS:
		out.PositiveHighlight = model.LabelDomainAgeSomeYears
		out.Detail = &Detail{Bucket: model.BucketDetailedAnalysis, Paragraph: msgAgeFiveToSevenYears}
	default:
		out.PositiveHighlight = model.LabelDomainAgeOld
		out.Detail = &Detail{Bucket: model.BucketDetailedAnalysis, Paragraph: msgAgeSevenYearsPlus}
	}
	return out
}

// registrar treats any ranked domain as having a reputable registrar.
func registrar(b *model.SignalBundle) Output {
	if b.IsKnownRegistrar || b.GlobalRank != 0 {
		return Output{
			PositiveHighlight: model.LabelRegistrarGoodReputation,
			Detail:            &Detail{Bucket: model.BucketTechnicalAnalysis, Paragraph: msgRegistrarKnown},
		}
	}
	return Output{NegativeHighlight: model.LabelRegistrarUnknown}
}

// ssl distinguishes "no certificate found" from "invalid with a concrete
// error"; the latter carries the error text in the label itself.
func ssl(b *model.SignalBundle) Output {
	if b.SSLState.Valid {
		return Output{
			PositiveHighlight: model.LabelSSLValid,
			Detail:            &Detail{Bucket: model.BucketTechnicalAnalysis, Paragraph: msgSSLValid},
		}
	}
	out := Output{
		NegativeHighlight: model.LabelNoSSLCertFound,
		Detail:            &Detail{Bucket: model.BucketTechnicalAnalysis, Paragraph: msgSSLInvalid},
	}
	if b.SSLState.Error != "" {
		out.NegativeHighlight = fmt.Sprintf("Invalid SSL Certificate with error %s", b.SSLState.Error)
	}
	return out
}

func hsts(b *model.SignalBundle) Output {
	if b.DoesSupportHSTS || b.GlobalRank != 0 {
		return Output{PositiveHighlight: model.LabelSupportsHSTS}
	}
	return Output{}
}

// redirects skips domains in (0, 500k]; for everyone else a non-empty
// redirect target is a negative signal.
func redirects(b *model.SignalBundle) Output {
	if b.GlobalRank > 0 && b.GlobalRank <= rankTop500k {
		return Output{}
	}
	if b.RedirectsTo != "" {
		return Output{NegativeHighlight: model.LabelURLRedirects}
	}
	return Output{}
}

// urlLength only fires for unranked domains.
func urlLength(b *model.SignalBundle) Output {
	if b.GlobalRank != 0 {
		return Output{}
	}
	if b.URLTooLong {
		return Output{NegativeHighlight: model.LabelURLTooLong}
	}
	return Output{}
}

// externalObjects skips (0, 200k] and never fires for unranked domains: the
// signal is only meaningful for ranked-but-poorly-ranked sites.
func externalObjects(b *model.SignalBundle) Output {
	if b.GlobalRank > 0 && b.GlobalRank <= rankTop200k {
		return Output{}
	}
	if b.DoesLoadExternalObjects && b.GlobalRank != 0 {
		return Output{NegativeHighlight: model.LabelLoadsExternalObjects}
	}
	return Output{}
}

func referrerPolicy(b *model.SignalBundle) Output {
	if b.ImplementsReferrerPol || b.GlobalRank != 0 {
		return Output{PositiveHighlight: model.LabelImplementsReferrerPol}
	}
	return Output{NegativeHighlight: model.LabelNoReferrerPolicy}
}

// csp skips (0, 200k]; outside that band it contributes either way.
func csp(b *model.SignalBundle) Output {
	if b.GlobalRank > 0 && b.GlobalRank <= rankTop200k {
		return Output{}
	}
	if b.SupportsCSP {
		return Output{PositiveHighlight: model.LabelProtectedInjection}
	}
	return Output{NegativeHighlight: model.LabelNotProtectedInjection}
}

func parkedDomain(b *model.SignalBundle) Output {
	if b.IsParkedDomain {
		return Output{
			NegativeHighlight: model.LabelDomainParked,
			Detail:            &Detail{Bucket: model.BucketCompanyEvaluation, Paragraph: msgDomainParked},
		}
	}
	return Output{}
}

func whoisHidden(b *model.SignalBundle) Output {
	if b.WhoisHidden {
		return Output{
			NegativeHighlight: model.LabelDoesHideWhois,
			Detail:            &Detail{Bucket: model.BucketCompanyEvaluation, Paragraph: msgWhoisHidden},
		}
	}
	return Output{}
}

// dnsBlacklist only trusts the blacklist signal for unranked domains; any
// ranked domain is treated as clean.
func dnsBlacklist(b *model.SignalBundle) Output {
	if b.IsDNSBlacklisted && b.GlobalRank == 0 {
		return Output{
			NegativeHighlight: model.LabelDNSBlacklisted,
			Detail:            &Detail{Bucket: model.BucketTechnicalAnalysis, Paragraph: msgDNSBlacklisted},
		}
	}
	return Output{PositiveHighlight: model.LabelNotDNSBlacklisted}
}
