package manifest

import "strings"

// pythonPackages maps PyPI distribution names to canonical entries. Shared
// by the requirements.txt and pyproject.toml parsers.
var pythonPackages = map[string]Entry{
	"django":          {Name: "Django", Category: "framework"},
	"flask":           {Name: "Flask", Category: "framework"},
	"fastapi":         {Name: "FastAPI", Category: "framework"},
	"tornado":         {Name: "Tornado", Category: "framework"},
	"celery":          {Name: "Celery", Category: "tool"},
	"sqlalchemy":      {Name: "SQLAlchemy", Category: "tool"},
	"pandas":          {Name: "pandas", Category: "framework"},
	"numpy":           {Name: "NumPy", Category: "framework"},
	"scipy":           {Name: "SciPy", Category: "framework"},
	"scikit-learn":    {Name: "scikit-learn", Category: "framework"},
	"tensorflow":      {Name: "TensorFlow", Category: "framework"},
	"torch":           {Name: "PyTorch", Category: "framework"},
	"pytest":          {Name: "pytest", Category: "tool"},
	"pydantic":        {Name: "Pydantic", Category: "tool"},
	"requests":        {Name: "Requests", Category: "tool"},
	"boto3":           {Name: "AWS SDK", Category: "tool"},
	"redis":           {Name: "Redis", Category: "tool"},
	"psycopg2":        {Name: "PostgreSQL", Category: "tool"},
	"psycopg2-binary": {Name: "PostgreSQL", Category: "tool"},
}

// pipParser extracts distribution names from requirements.txt. Comment lines
// and pip options are skipped, version constraints and environment markers
// discarded.
type pipParser struct{}

func (pipParser) Filename() string {
	return "requirements.txt"
}

func (pipParser) Parse(data []byte) ([]Entry, error) {
	var identifiers []string

	for _, line := range strings.Split(string(data), "\n") {
		if name := requirementName(line); name != "" {
			identifiers = append(identifiers, name)
		}
	}

	return mapIdentifiers(identifiers, pythonPackages), nil
}

// requirementName extracts the distribution name from one requirement line,
// e.g. "flask==2.0  # pinned" yields "flask". Returns "" for comments,
// blank lines and pip options.
func requirementName(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
		return ""
	}

	if idx := strings.Index(line, "#"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}

	// Cut at the first extras bracket, version operator or marker separator.
	if idx := strings.IndexAny(line, " [<>=!~;@"); idx >= 0 {
		line = line[:idx]
	}

	return strings.ToLower(line)
}
