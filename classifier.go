package main

import (
	"bytes"
	"os"
	"path/filepath"
)

// classifyFile measures a single file and resolves its language from the
// filename extension. A missing or unbound extension yields a record with an
// empty Language; that is not an error, the record is simply invisible to
// aggregation and find.
func classifyFile(path string) (FileRecord, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	record := FileRecord{Path: absPath}
	// A name like ".rs" is a dotfile with no extension, not an extension:
	// filepath.Ext would return the whole name.
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != base {
		if name, ok := lookupLanguage(ext); ok {
			record.Language = name
		}
	}

	// Counts are taken on raw bytes with no encoding validation, so binary
	// files measure without crashing and text files measure regardless of
	// content language.
	data, err := os.ReadFile(path)
	if err != nil {
		return FileRecord{}, err
	}
	record.Bytes = int64(len(data))
	record.Lines = countLines(data)

	return record, nil
}

// countLines counts line terminators, plus one for a trailing partial line.
// "a\nb\nc" and "a\nb\nc\n" both count 3; an empty file counts 0.
func countLines(data []byte) int64 {
	if len(data) == 0 {
		return 0
	}
	n := int64(bytes.Count(data, []byte{'\n'}))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}
