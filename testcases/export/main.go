// Command export writes the test case definitions to
// testdata/testcases.yaml, so that renderers outside this module can be
// checked on the same grids and site sets.  Every entry has a name, the
// grid size and the list of sites as [x, y] pairs.  Run from the
// go-voronoi module root directory.
package main

import (
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/voronoi/testcases"
)

func main() {
	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.yaml")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := writeTestCases(f); err != nil {
		panic(err)
	}
}

type yamlFile struct {
	TestCases []yamlTestCase `yaml:"testcases"`
}

// writeTestCases encodes all test cases, sorted by category, as YAML.
func writeTestCases(w io.Writer) error {
	var out yamlFile
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toYAML(category, tc))
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

type yamlTestCase struct {
	Name   string       `yaml:"name"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Sites  [][2]float64 `yaml:"sites,flow"`
}

func toYAML(category string, tc testcases.TestCase) yamlTestCase {
	ytc := yamlTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Sites:  make([][2]float64, len(tc.Sites)),
	}
	for i, s := range tc.Sites {
		ytc.Sites[i] = [2]float64{s.X, s.Y}
	}
	return ytc
}
