package main

import (
	"sort"
	"strings"
)

// Aggregator folds FileRecords into per-language totals. The fold is
// commutative and associative, so records may arrive in any order and
// partial aggregates from parallel workers merge by plain addition.
type Aggregator struct {
	stats map[string]*LanguageStats
}

func newAggregator() *Aggregator {
	return &Aggregator{stats: make(map[string]*LanguageStats)}
}

// Accumulate folds one record into the totals. Unclassified records and
// records of excluded languages contribute nothing.
func (a *Aggregator) Accumulate(record FileRecord, cfg ScanConfig) {
	if record.Language == "" {
		return
	}
	if cfg.ExcludeLanguages[strings.ToLower(record.Language)] {
		return
	}
	entry := a.stats[record.Language]
	if entry == nil {
		entry = &LanguageStats{Name: record.Language}
		a.stats[record.Language] = entry
	}
	entry.Files++
	entry.Bytes += record.Bytes
	entry.Lines += record.Lines
}

// Merge adds another aggregator's totals into this one. Used when partial
// aggregates are built per worker and combined at the end.
func (a *Aggregator) Merge(other *Aggregator) {
	for name, theirs := range other.stats {
		entry := a.stats[name]
		if entry == nil {
			entry = &LanguageStats{Name: name}
			a.stats[name] = entry
		}
		entry.Files += theirs.Files
		entry.Bytes += theirs.Bytes
		entry.Lines += theirs.Lines
		entry.Tokens += theirs.Tokens
	}
}

// Report orders the accumulated statistics for presentation: most bytes
// first, ties broken by name so output is reproducible across runs and
// platforms.
func (a *Aggregator) Report() Report {
	ordered := make([]LanguageStats, 0, len(a.stats))
	for _, entry := range a.stats {
		ordered = append(ordered, *entry)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Bytes != ordered[j].Bytes {
			return ordered[i].Bytes > ordered[j].Bytes
		}
		return ordered[i].Name < ordered[j].Name
	})
	return Report{Languages: ordered}
}

// findFiles collects the absolute paths of every record matching the
// requested language, compared case-insensitively against canonical names.
// An unknown language name yields an empty list rather than an error.
func findFiles(records []FileRecord, language string, cfg ScanConfig) []string {
	canonical, ok := resolveLanguage(language)
	if !ok {
		return nil
	}
	if cfg.ExcludeLanguages[strings.ToLower(canonical)] {
		return nil
	}
	var paths []string
	for _, record := range records {
		if record.Language == canonical {
			paths = append(paths, record.Path)
		}
	}
	sort.Strings(paths)
	return paths
}

// aggregate runs the full fold over a record slice and returns the ordered
// report.
func aggregate(records []FileRecord, cfg ScanConfig) Report {
	agg := newAggregator()
	for _, record := range records {
		agg.Accumulate(record, cfg)
	}
	return agg.Report()
}
