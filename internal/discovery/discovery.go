package discovery

import "simtool/internal/domain"

// Discovery combines the scanner and parser into a single pass that
// produces the full set of test identifiers for a test tree.
type Discovery struct {
	scanner *Scanner
	parser  *Parser
}

// New creates a Discovery that skips the given directories.
func New(skipDirs []string) *Discovery {
	return &Discovery{
		scanner: NewScanner(skipDirs),
		parser:  NewParser(),
	}
}

// Discover returns every test identifier under root, ordered by file
// traversal order and in-file position. The registry is recomputed
// fresh on each invocation.
func (d *Discovery) Discover(root string) ([]domain.TestID, error) {
	files, err := d.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	var tests []domain.TestID
	for _, file := range files {
		ids, err := d.parser.FindTests(file, ModuleName(root, file))
		if err != nil {
			return nil, err
		}
		tests = append(tests, ids...)
	}
	return tests, nil
}
