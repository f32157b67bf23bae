package main

// FileRecord holds the measurements taken for a single file during a scan.
// Records are created once by the classifier and never mutated afterwards.
type FileRecord struct {
	Path     string // absolute path
	Language string // canonical language name, "" if unclassified
	Bytes    int64
	Lines    int64
}

// LanguageStats accumulates per-language totals across all classified files.
type LanguageStats struct {
	Name   string `json:"name" yaml:"name"`
	Files  int64  `json:"files" yaml:"files"`
	Bytes  int64  `json:"bytes" yaml:"bytes"`
	Lines  int64  `json:"lines" yaml:"lines"`
	Tokens int64  `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// Report is the terminal output of an aggregate-mode scan: the ordered
// per-language statistics handed to the presentation layer.
type Report struct {
	Languages []LanguageStats `json:"languages" yaml:"languages"`
}

// ScanConfig carries everything the walker and aggregator need to decide
// which entries participate in a scan. Immutable for the duration of one run.
type ScanConfig struct {
	// IncludeDotfiles admits entries whose name starts with a dot.
	IncludeDotfiles bool
	// IncludeOverrides re-admits entries (by exact name) that the dotfile
	// rule or the default-ignored set would otherwise skip.
	IncludeOverrides map[string]bool
	// ExcludeLanguages removes languages (by lowercased canonical name)
	// from aggregation entirely.
	ExcludeLanguages map[string]bool
	// MaxDepth stops descending below this many levels. 0 means unlimited.
	MaxDepth int
	// UseGitignore honors the root .gitignore file when present.
	UseGitignore bool
	// Threads sizes the classification worker pool. 0 means NumCPU.
	Threads int
}

// Diagnostic records a non-fatal per-entry failure encountered while
// scanning. Diagnostics never abort a scan.
type Diagnostic struct {
	Path string
	Err  error
}

// ScanOutcome bundles the classified records with the diagnostics collected
// along the way.
type ScanOutcome struct {
	Records     []FileRecord
	Diagnostics []Diagnostic
}
