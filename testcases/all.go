package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in debug image filenames.
var All = map[string][]TestCase{
	"basic":    basicCases,
	"tie":      tieCases,
	"boundary": boundaryCases,
	"shape":    shapeCases,
	"many":     manyCases,
}
