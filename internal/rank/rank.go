// Package rank resolves a domain's global popularity rank from a
// pre-partitioned dataset. A rank of 0 means "not ranked in the top
// 1,000,000" and is never an error; only an unreadable dataset is.
package rank

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// Unranked is the sentinel rank for domains absent from the dataset.
const Unranked = 0

// Source resolves the global rank for a domain name.
type Source interface {
	// Resolve returns the domain's rank, or Unranked when the domain is not
	// in the dataset. An error means the dataset itself was unreadable and
	// is fatal for the request.
	Resolve(ctx context.Context, domainName string) (int, error)
}

// Normalize lowercases a domain name and converts internationalized names to
// their ASCII (punycode) form, which is the form the dataset stores.
func Normalize(domainName string) string {
	domainName = strings.ToLower(strings.TrimSpace(domainName))
	if ascii, err := idna.Lookup.ToASCII(domainName); err == nil {
		return ascii
	}
	return domainName
}

// FileSource reads ranks from a directory of shard files. Shards are keyed
// by the first two characters of the domain name, one "domain:rank" pair per
// line, unsorted.
type FileSource struct {
	shardDir string
}

// NewFileSource creates a FileSource over the given shard directory.
func NewFileSource(shardDir string) *FileSource {
	return &FileSource{shardDir: filepath.Clean(shardDir)}
}

// ShardPath returns the shard file that may contain the given domain.
func (f *FileSource) ShardPath(domainName string) string {
	prefix := domainName
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return filepath.Join(f.shardDir, prefix+".txt")
}

// Resolve scans the matching shard for an exact domain match. A domain
// missing from its shard resolves to Unranked.
func (f *FileSource) Resolve(ctx context.Context, domainName string) (int, error) {
	domainName = Normalize(domainName)
	if domainName == "" {
		return Unranked, fmt.Errorf("rank: empty domain name")
	}

	file, err := os.Open(f.ShardPath(domainName))
	if err != nil {
		return Unranked, fmt.Errorf("rank: opening shard for %q: %w", domainName, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return Unranked, err
		}
		name, rankStr, ok := strings.Cut(scanner.Text(), ":")
		if !ok || name != domainName {
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(rankStr))
		if err != nil {
			return Unranked, fmt.Errorf("rank: malformed entry for %q: %w", domainName, err)
		}
		return rank, nil
	}
	if err := scanner.Err(); err != nil {
		return Unranked, fmt.Errorf("rank: reading shard for %q: %w", domainName, err)
	}
	return Unranked, nil
}
