// Package testutil provides shared test doubles for use across package
// tests. All dummies implement the corresponding production interfaces,
// allowing injection into components under test without real I/O.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/domainlens/domainlens/internal/logging"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── Rank source ───────────────────────────────────────────────────────

// StaticRankSource implements rank.Source from a fixed map. Unlisted
// domains resolve to 0 (unranked). Set Err to force a lookup failure, and
// check Calls to assert whether the pipeline performed a lookup at all.
type StaticRankSource struct {
	Ranks map[string]int
	Err   error

	mu    sync.Mutex
	Calls []string
}

func (s *StaticRankSource) Resolve(_ context.Context, domainName string) (int, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, domainName)
	s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Ranks[domainName], nil
}

// CallCount returns how many lookups were performed.
func (s *StaticRankSource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}

// ErrLookupFailed is a convenient forced failure for StaticRankSource.Err.
var ErrLookupFailed = errors.New("testutil: forced rank lookup failure")
