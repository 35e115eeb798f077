package server

import (
	"github.com/domainlens/domainlens/internal/logging"
	"github.com/domainlens/domainlens/internal/rank"
	"github.com/domainlens/domainlens/internal/score"
)

// Config collects the server's dependencies and tunables.
type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// Ranks is the rank dataset source used by the pipeline.
	Ranks rank.Source

	// Weights configures the score calculator.
	Weights score.Weights

	// RatePerSecond caps accepted requests per second; 0 disables limiting.
	RatePerSecond float64

	// RateBurst is the limiter's burst allowance.
	RateBurst int

	// Logger is optional; a stdout logger is used when nil.
	Logger logging.Logger
}
