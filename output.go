package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// renderReport serializes the ordered statistics into the requested format:
// "human", "json", or "yaml".
func renderReport(report Report, format string) (string, error) {
	switch format {
	case "human":
		return renderHuman(report), nil
	case "json":
		out, err := json.Marshal(report)
		if err != nil {
			return "", fmt.Errorf("encoding JSON output: %w", err)
		}
		return string(out) + "\n", nil
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return "", fmt.Errorf("encoding YAML output: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown output format: %s (use human, json, or yaml)", format)
	}
}

// renderHuman prints one line per language with byte/line/file shares.
// Languages holding less than 1% of the total bytes roll up into a single
// trailing "Other" line.
func renderHuman(report Report) string {
	var totalFiles, totalBytes, totalLines, totalTokens int64
	for _, lang := range report.Languages {
		totalFiles += lang.Files
		totalBytes += lang.Bytes
		totalLines += lang.Lines
		totalTokens += lang.Tokens
	}
	if totalFiles == 0 {
		return "No recognized source files found.\n"
	}

	var builder strings.Builder
	var otherFiles, otherBytes, otherLines, otherTokens int64

	for _, lang := range report.Languages {
		bytePercent := 100 * float64(lang.Bytes) / float64(totalBytes)
		if bytePercent < 1 {
			otherFiles += lang.Files
			otherBytes += lang.Bytes
			otherLines += lang.Lines
			otherTokens += lang.Tokens
			continue
		}
		builder.WriteString(fmt.Sprintf("%s: %d bytes (%s%%), %d lines (%s%%), %d files (%s%%)",
			lang.Name,
			lang.Bytes, formatPercent(lang.Bytes, totalBytes),
			lang.Lines, formatPercent(lang.Lines, totalLines),
			lang.Files, formatPercent(lang.Files, totalFiles)))
		if lang.Tokens > 0 {
			builder.WriteString(fmt.Sprintf(", %d tokens", lang.Tokens))
		}
		builder.WriteString("\n")
	}

	if otherBytes > 0 {
		builder.WriteString(fmt.Sprintf("Other: %d bytes (%s%%), %d lines (%s%%), %d files (%s%%)",
			otherBytes, formatPercent(otherBytes, totalBytes),
			otherLines, formatPercent(otherLines, totalLines),
			otherFiles, formatPercent(otherFiles, totalFiles)))
		if otherTokens > 0 {
			builder.WriteString(fmt.Sprintf(", %d tokens", otherTokens))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// formatPercent renders a share as a whole number, keeping two decimals only
// below 1% so small slices don't show as 0%.
func formatPercent(part, total int64) string {
	if total == 0 {
		return "0"
	}
	percent := 100 * float64(part) / float64(total)
	if percent >= 1 {
		return fmt.Sprintf("%d", int(percent))
	}
	return fmt.Sprintf("%.2f", percent)
}

// renderPaths prints one absolute path per line, for find and find-root
// modes.
func renderPaths(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return strings.Join(paths, "\n") + "\n"
}
