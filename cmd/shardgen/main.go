// Command shardgen builds a rank dataset from a "domain,rank" CSV, either as
// a directory of per-prefix shard files (one "domain:rank" line per entry)
// or as a SQLite database with a ranks table.
package main

import (
	"bufio"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/domainlens/domainlens/internal/rank"
)

func main() {
	var (
		input  = flag.String("input", "", "CSV file of domain,rank pairs (required)")
		outDir = flag.String("out", "", "Output directory for shard files")
		dbPath = flag.String("db", "", "Output SQLite database path (instead of shards)")
	)
	flag.Parse()

	if *input == "" || (*outDir == "" && *dbPath == "") {
		fmt.Fprintln(os.Stderr, "usage: shardgen -input ranks.csv (-out ./shards | -db ./ranks.db)")
		os.Exit(2)
	}

	entries, err := readCSV(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shardgen: %v\n", err)
		os.Exit(1)
	}

	if *dbPath != "" {
		err = writeSQLite(*dbPath, entries)
	} else {
		err = writeShards(*outDir, entries)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "shardgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d entries\n", len(entries))
}

type entry struct {
	domain string
	rank   int
}

func readCSV(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var out []entry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rk, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("bad rank %q for %s: %w", rec[1], rec[0], err)
		}
		out = append(out, entry{domain: rank.Normalize(rec[0]), rank: rk})
	}
	return out, nil
}

// writeShards partitions entries by the first two characters of the domain,
// the layout FileSource expects.
func writeShards(dir string, entries []entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	byShard := make(map[string][]entry)
	for _, e := range entries {
		prefix := e.domain
		if len(prefix) > 2 {
			prefix = prefix[:2]
		}
		byShard[prefix] = append(byShard[prefix], e)
	}

	for prefix, group := range byShard {
		path := filepath.Join(dir, prefix+".txt")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating shard %s: %w", path, err)
		}
		w := bufio.NewWriter(f)
		for _, e := range group {
			fmt.Fprintf(w, "%s:%d\n", e.domain, e.rank)
		}
		if err := w.Flush(); err != nil {
			f.Close()
			return fmt.Errorf("writing shard %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing shard %s: %w", path, err)
		}
	}
	return nil
}

func writeSQLite(path string, entries []entry) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(rank.Schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO ranks (domain, rank) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.domain, e.rank); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting %s: %w", e.domain, err)
		}
	}
	return tx.Commit()
}
