package main

import "strings"

// languageDef binds a canonical language name to the extensions it claims.
type languageDef struct {
	Name       string
	Extensions []string
}

// languageTable is the fixed set of recognized languages. Adding support for
// a new language means adding an entry here; there is no runtime
// registration. Order matters only for contested extensions: the first
// language to claim an extension wins, and every such tie-break is noted on
// the claiming entry.
var languageTable = []languageDef{
	{Name: "Assembly", Extensions: []string{"asm"}},
	{Name: "Bash", Extensions: []string{"bash"}},
	// "h" headers default to C rather than C++.
	{Name: "C", Extensions: []string{"c", "h"}},
	{Name: "C++", Extensions: []string{"cpp", "c++", "cxx", "cc", "hpp", "hh", "h++", "hxx"}},
	{Name: "C#", Extensions: []string{"cs"}},
	{Name: "Fortran", Extensions: []string{"f", "for", "f90", "f95"}},
	{Name: "Gleam", Extensions: []string{"gleam"}},
	{Name: "Go", Extensions: []string{"go"}},
	{Name: "Haskell", Extensions: []string{"lhs", "hs"}},
	{Name: "Java", Extensions: []string{"java"}},
	{Name: "JavaScript", Extensions: []string{"js", "mjs", "cjs"}},
	{Name: "JavaScript React", Extensions: []string{"jsx"}},
	{Name: "Kotlin", Extensions: []string{"kt"}},
	{Name: "Lua", Extensions: []string{"lua"}},
	// "m" defaults to MATLAB rather than Objective-C.
	{Name: "MATLAB", Extensions: []string{"m"}},
	{Name: "PHP", Extensions: []string{"php"}},
	{Name: "Python", Extensions: []string{"py"}},
	{Name: "R", Extensions: []string{"r"}},
	{Name: "Ruby", Extensions: []string{"rb"}},
	{Name: "Rust", Extensions: []string{"rs"}},
	{Name: "SQL", Extensions: []string{"sql"}},
	{Name: "Svelte", Extensions: []string{"svelte"}},
	{Name: "Swift", Extensions: []string{"swift"}},
	{Name: "TypeScript", Extensions: []string{"ts"}},
	{Name: "TypeScript React", Extensions: []string{"tsx"}},
	// "v" defaults to V rather than Verilog.
	{Name: "V", Extensions: []string{"v"}},
	{Name: "Vue", Extensions: []string{"vue"}},
	{Name: "Zig", Extensions: []string{"zig"}},
}

// extensionMap maps a lowercased, dotless extension to its canonical
// language name. Built once at startup and never written afterwards, so
// lookups need no synchronization.
var extensionMap = buildExtensionMap()

// canonicalNames maps a lowercased language name back to its canonical form,
// for case-insensitive find/exclude input.
var canonicalNames = buildCanonicalNames()

func buildExtensionMap() map[string]string {
	m := make(map[string]string)
	for _, def := range languageTable {
		for _, ext := range def.Extensions {
			lowerExt := strings.ToLower(ext)
			if m[lowerExt] == "" { // first binding wins on contested extensions
				m[lowerExt] = def.Name
			}
		}
	}
	return m
}

func buildCanonicalNames() map[string]string {
	m := make(map[string]string, len(languageTable))
	for _, def := range languageTable {
		m[strings.ToLower(def.Name)] = def.Name
	}
	return m
}

// lookupLanguage resolves a filename extension (with or without the leading
// dot, any case) to a canonical language name. The second return reports
// whether the extension is bound.
func lookupLanguage(ext string) (string, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return "", false
	}
	name, ok := extensionMap[ext]
	return name, ok
}

// resolveLanguage resolves a user-supplied language name, case-insensitively,
// to its canonical form. Unknown names report false rather than erroring so
// callers can degrade to "no matches".
func resolveLanguage(name string) (string, bool) {
	canonical, ok := canonicalNames[strings.ToLower(name)]
	return canonical, ok
}
