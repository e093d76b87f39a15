package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageForExt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		ext      string
		expected string
		found    bool
	}{
		{"py", "Python", true},
		{"rs", "Rust", true},
		{"ts", "TypeScript", true},
		{"tsx", "TypeScript", true},
		{"svelte", "Svelte", true},
		{"R", "R", true},
		{"zsh", "Shell", true},
		{"unknown", "", false},
		{"", "", false},
	}

	for _, testCase := range testCases {
		lang, ok := LanguageForExt(testCase.ext)
		assert.Equal(t, testCase.found, ok, "for extension %q", testCase.ext)
		assert.Equal(t, testCase.expected, lang, "for extension %q", testCase.ext)
	}
}

func TestIsBinaryExt(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBinaryExt("png"))
	assert.True(t, IsBinaryExt("wasm"))
	assert.True(t, IsBinaryExt("sqlite3"))
	assert.False(t, IsBinaryExt("py"))
	assert.False(t, IsBinaryExt("rs"))
	assert.False(t, IsBinaryExt(""))
}

func TestLanguageTallyRecord(t *testing.T) {
	t.Parallel()

	tally := LanguageTally{}
	tally.Record("py", 100)
	tally.Record("py", 50)
	tally.Record("js", 25)
	tally.Record("unknown", 999)
	tally.Record("", 999)

	assert.Equal(t, LanguageTally{"Python": 150, "JavaScript": 25}, tally)
}

func TestBuildLanguageList(t *testing.T) {
	t.Parallel()

	list := BuildLanguageList(LanguageTally{"Python": 700, "JavaScript": 300})

	assert.Len(t, list, 2)
	assert.Equal(t, LanguageEntry{Name: "Python", Percentage: 70}, list[0])
	assert.Equal(t, LanguageEntry{Name: "JavaScript", Percentage: 30}, list[1])
}

func TestBuildLanguageListEmpty(t *testing.T) {
	t.Parallel()

	list := BuildLanguageList(LanguageTally{})
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestBuildLanguageListPercentagesSumToHundred(t *testing.T) {
	t.Parallel()

	tally := LanguageTally{"Python": 1, "JavaScript": 1, "Rust": 1}

	var sum float64
	for _, entry := range BuildLanguageList(tally) {
		sum += entry.Percentage
	}

	assert.InDelta(t, 100, sum, 0.1)
}

func TestBuildLanguageListStableTieOrder(t *testing.T) {
	t.Parallel()

	list := BuildLanguageList(LanguageTally{"Rust": 500, "Go": 500})

	assert.Equal(t, "Go", list[0].Name)
	assert.Equal(t, "Rust", list[1].Name)
}

func TestLanguageTallyMerge(t *testing.T) {
	t.Parallel()

	tally := LanguageTally{"Python": 100}
	tally.Merge(LanguageTally{"Python": 50, "Rust": 25})

	assert.Equal(t, LanguageTally{"Python": 150, "Rust": 25}, tally)
}
