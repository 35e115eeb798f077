// Package score computes the final trust score from raw signal values. It is
// independent of highlight derivation: the formula reads the enriched bundle,
// never the contributed labels.
package score

import "github.com/domainlens/domainlens/internal/model"

// BaseScore is the conceptual maximum; all weights scale against it.
const BaseScore = 100

// rankShortCircuit is the tightest rank band: anything inside it scores the
// maximum immediately. Distinct from (and narrower than) the 500k enrichment
// band.
const rankShortCircuit = 50_000

// Millisecond age thresholds for the adjustment brackets.
const (
	oneYearMS    = int64(1000) * 60 * 60 * 24 * 365
	twoYearsMS   = 2 * oneYearMS
	fiveYearsMS  = 5 * oneYearMS
	sevenYearsMS = 7 * oneYearMS
)

// Weights configures the per-signal adjustments as fractions of BaseScore.
type Weights struct {
	// DomainAge is the bonus applied when a rank corroborates the age signal.
	DomainAge float64 `yaml:"domain_age"`

	// SSLValid is added for a valid certificate and subtracted for a missing
	// or invalid one.
	SSLValid float64 `yaml:"ssl_valid"`

	// ParkedDomain is the penalty for parked domains.
	ParkedDomain float64 `yaml:"parked_domain"`
}

// DefaultWeights returns the production weight set.
func DefaultWeights() Weights {
	return Weights{
		DomainAge:    0.1,
		SSLValid:     0.1,
		ParkedDomain: 0.5,
	}
}

// Calculator computes trust scores with a fixed weight set.
type Calculator struct {
	weights Weights
}

// NewCalculator creates a Calculator. Zero-valued weights fall back to the
// defaults.
func NewCalculator(weights Weights) *Calculator {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &Calculator{weights: weights}
}

// Compute returns the trust score in [0, 100].
//
// The jitter step spreads otherwise-identical low scores apart using the
// first character of the domain name; it is a cosmetic tie-breaker, not a
// security signal.
func (c *Calculator) Compute(bundle *model.SignalBundle) int {
	if bundle.GlobalRank > 0 && bundle.GlobalRank <= rankShortCircuit {
		return BaseScore
	}

	current := float64(BaseScore)

	switch {
	case bundle.DomainAge < twoYearsMS:
		current -= BaseScore * 0.5
	case bundle.DomainAge < fiveYearsMS:
		current += BaseScore * 0.5
	case bundle.DomainAge < sevenYearsMS:
		current += BaseScore * 0.6
	default:
		current += BaseScore * 0.9
	}

	if bundle.GlobalRank != 0 {
		current += BaseScore * c.weights.DomainAge
	}

	if bundle.SSLState.Valid {
		current += BaseScore * c.weights.SSLValid
	} else {
		current -= BaseScore * c.weights.SSLValid
	}

	if bundle.IsParkedDomain {
		current -= BaseScore * c.weights.ParkedDomain
	}

	if current <= 89 && bundle.DomainName != "" {
		current += float64(int(bundle.DomainName[0]) % 11)
	}

	if current >= BaseScore {
		return BaseScore
	}
	if current < 0 {
		return 0
	}
	return int(current)
}
