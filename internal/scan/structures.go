package scan

import "sort"

// Structure flags derived from directory shape. Presence checks only, no
// content inspection.
const (
	StructureSrcLayout     = "src_layout"
	StructureMonorepo      = "monorepo"
	StructurePythonPackage = "python_package"
	StructureNodeProject   = "node_project"
	StructureMakefile      = "makefile"
	StructureTestsLayout   = "tests_layout"
)

// testDirNames are top-level directory names indicating a dedicated test
// tree.
var testDirNames = []string{"test", "tests", "spec"}

// DetectStructures derives project-structure flags from the top-level entry
// names of a repository. subPackages is the number of top-level directories
// carrying their own dependency manifest; two or more independently
// versioned sub-packages imply a monorepo.
func DetectStructures(topLevel []string, subPackages int) []string {
	names := make(map[string]struct{}, len(topLevel))
	for _, name := range topLevel {
		names[name] = struct{}{}
	}

	contains := func(name string) bool {
		_, ok := names[name]
		return ok
	}

	var structures []string

	if contains("src") {
		structures = append(structures, StructureSrcLayout)
	}

	if contains("packages") || contains("libs") || subPackages >= 2 {
		structures = append(structures, StructureMonorepo)
	}

	if contains("setup.py") || contains("pyproject.toml") {
		structures = append(structures, StructurePythonPackage)
	}

	if contains("package.json") {
		structures = append(structures, StructureNodeProject)
	}

	if contains("Makefile") {
		structures = append(structures, StructureMakefile)
	}

	for _, name := range testDirNames {
		if contains(name) {
			structures = append(structures, StructureTestsLayout)
			break
		}
	}

	sort.Strings(structures)

	return structures
}
