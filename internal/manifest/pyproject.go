package manifest

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/projectbridge/reposcan/internal/errors"
)

// pyprojectParser extracts distribution names from pyproject.toml, covering
// PEP 621 dependency lists and Poetry dependency tables. It shares the
// Python lookup table with the requirements.txt parser.
type pyprojectParser struct{}

func (pyprojectParser) Filename() string {
	return "pyproject.toml"
}

func (pyprojectParser) Parse(data []byte) ([]Entry, error) {
	var doc map[string]any

	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(err)
	}

	var identifiers []string

	if project, ok := doc["project"].(map[string]any); ok {
		identifiers = append(identifiers, requirementList(project["dependencies"])...)

		if optional, ok := project["optional-dependencies"].(map[string]any); ok {
			for _, deps := range optional {
				identifiers = append(identifiers, requirementList(deps)...)
			}
		}
	}

	if tool, ok := doc["tool"].(map[string]any); ok {
		if poetry, ok := tool["poetry"].(map[string]any); ok {
			for _, name := range tableKeys(poetry, "dependencies") {
				if name != "python" {
					identifiers = append(identifiers, name)
				}
			}
		}
	}

	return mapIdentifiers(identifiers, pythonPackages), nil
}

// requirementList extracts distribution names from a list of PEP 508
// requirement strings.
func requirementList(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return nil
	}

	var names []string

	for _, item := range list {
		requirement, ok := item.(string)
		if !ok {
			continue
		}

		if name := requirementName(requirement); name != "" {
			names = append(names, name)
		}
	}

	return names
}
