package manifest

import (
	"encoding/json"
	"strings"

	"github.com/projectbridge/reposcan/internal/errors"
)

// phpPackages maps Composer package names to canonical entries.
var phpPackages = map[string]Entry{
	"laravel/framework": {Name: "Laravel", Category: "framework"},
	"symfony/symfony":   {Name: "Symfony", Category: "framework"},
	"slim/slim":         {Name: "Slim", Category: "framework"},
}

// composerParser extracts package names from composer.json.
type composerParser struct{}

func (composerParser) Filename() string {
	return "composer.json"
}

func (composerParser) Parse(data []byte) ([]Entry, error) {
	var pkg struct {
		Require    map[string]string `json:"require"`
		RequireDev map[string]string `json:"require-dev"`
	}

	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.New(err)
	}

	var identifiers []string

	for _, deps := range []map[string]string{pkg.Require, pkg.RequireDev} {
		for name := range deps {
			// Platform requirements, not packages.
			if name == "php" || strings.HasPrefix(name, "ext-") || strings.HasPrefix(name, "lib-") {
				continue
			}

			identifiers = append(identifiers, name)
		}
	}

	return mapIdentifiers(identifiers, phpPackages), nil
}
