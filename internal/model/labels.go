package model

// Label is a fixed-vocabulary highlight tag. Labels are bucketed positive or
// negative by the rule that contributes them; the same label is never used in
// both buckets.
type Label = string

// Positive labels.
const (
	LabelRankedTop100k           Label = "RANKED_AMONG_TOP_100K"
	LabelRankedTop500k           Label = "RANKED_AMONG_TOP_500K"
	LabelRankedTop1M             Label = "RANKED_AMONG_TOP_1M"
	LabelDomainAgeSomeYears      Label = "DOMAIN_AGE_SOME_YEARS"
	LabelDomainAgeOld            Label = "DOMAIN_AGE_OLD"
	LabelRegistrarGoodReputation Label = "REGISTRAR_GOOD_REPUTATION"
	LabelSSLValid                Label = "SSL_VALID"
	LabelSupportsHSTS            Label = "SUPPORTS_HSTS"
	LabelImplementsReferrerPol   Label = "IMPLEMENTS_REFERER_POLICY"
	LabelProtectedInjection      Label = "PROTECTED_AGAINST_INJECTION"
	LabelNotDNSBlacklisted       Label = "NOT_DNS_BLACKLISTED"
	LabelSafeByGoogleBrowsing    Label = "SAFE_BY_GOOGLE_SAFE_BROWSING"
	LabelSafeDNSFilter           Label = "SAFE_DNS_FILTER"
)

// Negative labels.
const (
	LabelDoesNotAllowAnalyze     Label = "DOES_NOT_ALLOW_ANALYSE_CONTENT"
	LabelDomainAgeVeryYoung      Label = "DOMAIN_AGE_VERY_YOUNG"
	LabelRegistrarUnknown        Label = "REGISTRAR_UNKNOWN"
	LabelNoSSLCertFound          Label = "NO_SSL_CERT_FOUND"
	LabelURLRedirects            Label = "URL_REDIRECTS"
	LabelURLTooLong              Label = "URL_TOO_LONG"
	LabelLoadsExternalObjects    Label = "LOADS_EXTERNAL_OBJECTS"
	LabelNoReferrerPolicy        Label = "DOES_NOT_IMPLEMENT_REFERER_POLICY"
	LabelNotProtectedInjection   Label = "NOT_PROTECTED_AGAINST_INJECTION"
	LabelDomainParked            Label = "DOMAIN_PARKED"
	LabelDoesHideWhois           Label = "DOES_HIDE_WHOIS"
	LabelDNSBlacklisted          Label = "DNS_BLACK_LISTED"
)
