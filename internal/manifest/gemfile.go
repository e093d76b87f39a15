package manifest

import (
	"regexp"
	"strings"
)

// rubyGems maps gem names to canonical entries.
var rubyGems = map[string]Entry{
	"rails":       {Name: "Ruby on Rails", Category: "framework"},
	"sinatra":     {Name: "Sinatra", Category: "framework"},
	"sidekiq":     {Name: "Sidekiq", Category: "tool"},
	"rspec":       {Name: "RSpec", Category: "tool"},
	"rspec-rails": {Name: "RSpec", Category: "tool"},
}

var gemDeclaration = regexp.MustCompile(`^\s*gem\s+['"]([\w.-]+)['"]`)

// gemfileParser extracts gem names from Gemfile declarations.
type gemfileParser struct{}

func (gemfileParser) Filename() string {
	return "Gemfile"
}

func (gemfileParser) Parse(data []byte) ([]Entry, error) {
	var identifiers []string

	for _, line := range strings.Split(string(data), "\n") {
		if match := gemDeclaration.FindStringSubmatch(line); match != nil {
			identifiers = append(identifiers, match[1])
		}
	}

	return mapIdentifiers(identifiers, rubyGems), nil
}
