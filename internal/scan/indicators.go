package scan

import (
	"path"
	"strings"
)

// Signal categories. Infrastructure signals are reported separately from
// everything else.
const (
	CategoryFramework      = "framework"
	CategoryTool           = "tool"
	CategoryLanguage       = "language"
	CategoryInfrastructure = "infrastructure"
)

type matchKind int

const (
	// matchName matches a file's basename exactly.
	matchName matchKind = iota

	// matchSuffix matches the end of a file's relative path.
	matchSuffix

	// matchDir matches a directory-name pattern: a single name matches any
	// path component, a slash-separated pattern matches a path prefix.
	matchDir
)

// IndicatorRule pairs a path match rule with the canonical name it signals.
type IndicatorRule struct {
	Kind     matchKind
	Pattern  string
	Name     string
	Category string
}

// Matches tests a relative path against the rule.
func (rule IndicatorRule) Matches(rel string, isDir bool) bool {
	switch rule.Kind {
	case matchName:
		return !isDir && path.Base(rel) == rule.Pattern
	case matchSuffix:
		return !isDir && strings.HasSuffix(rel, rule.Pattern)
	case matchDir:
		if strings.Contains(rule.Pattern, "/") {
			return rel == rule.Pattern || strings.HasPrefix(rel, rule.Pattern+"/")
		}

		dir := rel
		if !isDir {
			dir = path.Dir(rel)
		}

		for _, part := range strings.Split(dir, "/") {
			if part == rule.Pattern {
				return true
			}
		}

		return false
	}

	return false
}

// indicatorRules is the static detection registry. Detection is a set
// membership decision: a rule either matches a path or it doesn't, and every
// observed path is tested against every rule, since one file may satisfy
// multiple unrelated indicators.
var indicatorRules = []IndicatorRule{
	// Infrastructure
	{matchName, "Dockerfile", "Docker", CategoryInfrastructure},
	{matchSuffix, ".dockerfile", "Docker", CategoryInfrastructure},
	{matchName, "docker-compose.yml", "Docker Compose", CategoryInfrastructure},
	{matchName, "docker-compose.yaml", "Docker Compose", CategoryInfrastructure},
	{matchDir, ".github/workflows", "GitHub Actions", CategoryInfrastructure},
	{matchName, ".gitlab-ci.yml", "GitLab CI", CategoryInfrastructure},
	{matchDir, ".circleci", "CircleCI", CategoryInfrastructure},
	{matchName, "Jenkinsfile", "Jenkins", CategoryInfrastructure},
	{matchDir, "terraform", "Terraform", CategoryInfrastructure},
	{matchSuffix, ".tf", "Terraform", CategoryInfrastructure},
	{matchDir, "kubernetes", "Kubernetes", CategoryInfrastructure},
	{matchDir, "k8s", "Kubernetes", CategoryInfrastructure},
	{matchDir, "helm", "Helm", CategoryInfrastructure},
	{matchName, ".travis.yml", "Travis CI", CategoryInfrastructure},
	{matchName, "netlify.toml", "Netlify", CategoryInfrastructure},
	{matchName, "vercel.json", "Vercel", CategoryInfrastructure},
	{matchName, "fly.toml", "Fly.io", CategoryInfrastructure},
	{matchName, "render.yaml", "Render", CategoryInfrastructure},
	{matchName, "nginx.conf", "Nginx", CategoryInfrastructure},
	{matchName, "Vagrantfile", "Vagrant", CategoryInfrastructure},
	{matchDir, "ansible", "Ansible", CategoryInfrastructure},
	// Tools and frameworks
	{matchName, ".eslintrc.js", "ESLint", CategoryTool},
	{matchName, ".eslintrc.json", "ESLint", CategoryTool},
	{matchName, "tailwind.config.js", "Tailwind CSS", CategoryFramework},
	{matchName, "tailwind.config.ts", "Tailwind CSS", CategoryFramework},
	{matchName, "tsconfig.json", "TypeScript", CategoryLanguage},
	{matchName, "webpack.config.js", "Webpack", CategoryTool},
	{matchName, "vite.config.ts", "Vite", CategoryTool},
	{matchName, "vite.config.js", "Vite", CategoryTool},
	{matchName, ".prettierrc", "Prettier", CategoryTool},
	{matchName, "jest.config.js", "Jest", CategoryTool},
	{matchName, "jest.config.ts", "Jest", CategoryTool},
	{matchName, "pytest.ini", "pytest", CategoryTool},
	{matchName, "pyproject.toml", "Python Package", CategoryTool},
	{matchName, "Cargo.toml", "Rust", CategoryLanguage},
	{matchName, "go.mod", "Go", CategoryLanguage},
	{matchName, "Gemfile", "Ruby", CategoryLanguage},
	{matchName, "composer.json", "PHP", CategoryLanguage},
	{matchName, "build.gradle", "Gradle", CategoryTool},
	{matchSuffix, ".gradle.kts", "Gradle", CategoryTool},
	{matchName, "pom.xml", "Maven", CategoryTool},
}

// DetectIndicators tests the path against the full registry and adds every
// matching canonical name to the appropriate set. Evaluation never
// short-circuits on first match.
func DetectIndicators(rel string, isDir bool, frameworks, infra SignalSet) {
	for _, rule := range indicatorRules {
		if !rule.Matches(rel, isDir) {
			continue
		}

		if rule.Category == CategoryInfrastructure {
			infra.Add(rule.Name, rule.Category)
		} else {
			frameworks.Add(rule.Name, rule.Category)
		}
	}
}
