package manifest

import (
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/projectbridge/reposcan/internal/errors"
)

// goModules maps Go module paths (major-version suffix stripped) to
// canonical entries.
var goModules = map[string]Entry{
	"github.com/gin-gonic/gin": {Name: "Gin", Category: "framework"},
	"github.com/gorilla/mux":   {Name: "Gorilla Mux", Category: "framework"},
	"github.com/labstack/echo": {Name: "Echo", Category: "framework"},
	"github.com/gofiber/fiber": {Name: "Fiber", Category: "framework"},
	"gorm.io/gorm":             {Name: "GORM", Category: "tool"},
}

// gomodParser extracts require paths from go.mod.
type gomodParser struct{}

func (gomodParser) Filename() string {
	return "go.mod"
}

func (gomodParser) Parse(data []byte) ([]Entry, error) {
	file, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return nil, errors.New(err)
	}

	var identifiers []string

	for _, req := range file.Require {
		path := req.Mod.Path
		if prefix, _, ok := module.SplitPathVersion(path); ok {
			path = prefix
		}

		identifiers = append(identifiers, path)
	}

	return mapIdentifiers(identifiers, goModules), nil
}
