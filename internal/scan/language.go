package scan

import (
	"math"
	"sort"
)

// languageByExt maps file extensions to language labels. The labels are part
// of the canonical vocabulary shared with the downstream consumer.
var languageByExt = map[string]string{
	"py":     "Python",
	"js":     "JavaScript",
	"jsx":    "JavaScript",
	"ts":     "TypeScript",
	"tsx":    "TypeScript",
	"rs":     "Rust",
	"go":     "Go",
	"rb":     "Ruby",
	"java":   "Java",
	"kt":     "Kotlin",
	"swift":  "Swift",
	"c":      "C",
	"h":      "C",
	"cpp":    "C++",
	"cc":     "C++",
	"cxx":    "C++",
	"hpp":    "C++",
	"cs":     "C#",
	"php":    "PHP",
	"scala":  "Scala",
	"r":      "R",
	"R":      "R",
	"dart":   "Dart",
	"lua":    "Lua",
	"ex":     "Elixir",
	"exs":    "Elixir",
	"erl":    "Erlang",
	"hrl":    "Erlang",
	"hs":     "Haskell",
	"ml":     "OCaml",
	"mli":    "OCaml",
	"clj":    "Clojure",
	"cljs":   "Clojure",
	"jl":     "Julia",
	"zig":    "Zig",
	"svelte": "Svelte",
	"vue":    "Vue",
	"html":   "HTML",
	"htm":    "HTML",
	"css":    "CSS",
	"scss":   "SCSS",
	"sass":   "SCSS",
	"less":   "Less",
	"sql":    "SQL",
	"sh":     "Shell",
	"bash":   "Shell",
	"zsh":    "Shell",
	"ps1":    "PowerShell",
}

// binaryExts are extensions of files that carry no language signal and are
// skipped by the classifier.
var binaryExts = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "bmp": {}, "ico": {},
	"svg": {}, "webp": {}, "woff": {}, "woff2": {}, "ttf": {}, "eot": {},
	"otf": {}, "mp3": {}, "mp4": {}, "wav": {}, "avi": {}, "mov": {},
	"mkv": {}, "zip": {}, "tar": {}, "gz": {}, "bz2": {}, "xz": {},
	"7z": {}, "rar": {}, "exe": {}, "dll": {}, "so": {}, "dylib": {},
	"a": {}, "o": {}, "obj": {}, "wasm": {}, "pyc": {}, "pyo": {},
	"class": {}, "pdf": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {},
	"db": {}, "sqlite": {}, "sqlite3": {},
}

// LanguageForExt resolves a language label for a file extension.
func LanguageForExt(ext string) (string, bool) {
	lang, ok := languageByExt[ext]
	return lang, ok
}

// IsBinaryExt reports whether the extension belongs to the binary skip list.
func IsBinaryExt(ext string) bool {
	_, ok := binaryExts[ext]
	return ok
}

// LanguageTally maps language labels to cumulative byte counts, scoped to
// one repository.
type LanguageTally map[string]int64

// Record accumulates the bytes of one file. Files with unrecognized or
// absent extensions are not counted toward any language total.
func (tally LanguageTally) Record(ext string, size int64) {
	if lang, ok := LanguageForExt(ext); ok {
		tally[lang] += size
	}
}

// Merge adds another tally's byte counts into this one.
func (tally LanguageTally) Merge(other LanguageTally) {
	for lang, size := range other {
		tally[lang] += size
	}
}

// BuildLanguageList converts a byte tally into a percentage list sorted by
// descending share, then by name for a stable order. Percentages are rounded
// to one decimal. A zero tally yields an empty list, never a division error.
func BuildLanguageList(tally LanguageTally) []LanguageEntry {
	var total int64
	for _, size := range tally {
		total += size
	}

	if total == 0 {
		return []LanguageEntry{}
	}

	entries := make([]LanguageEntry, 0, len(tally))
	for lang, size := range tally {
		entries = append(entries, LanguageEntry{
			Name:       lang,
			Percentage: math.Round(float64(size)/float64(total)*1000) / 10,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}

		return entries[i].Name < entries[j].Name
	})

	return entries
}
