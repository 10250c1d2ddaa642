package discovery

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"simtool/internal/domain"
)

// Parser extracts test identifiers from Python test files.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	// class TestScheduler(TestCaseWithSimulator):
	classPattern = regexp.MustCompile(`^class\s+(\w+)\s*[(:]`)
	// def test_single(self):  (indented, inside a class)
	methodPattern = regexp.MustCompile(`^\s+def\s+(test\w*)\s*\(`)
	// def test_standalone():  (module level)
	funcPattern = regexp.MustCompile(`^def\s+(test\w*)\s*\(`)
	// any module-level def resets the current class context
	topLevelDefPattern = regexp.MustCompile(`^def\s+\w+\s*\(`)
)

// FindTests extracts test identifiers from a test file, in source
// order. Methods named test* inside classes become module.Class.method;
// module-level test* functions become module.function.
func (p *Parser) FindTests(filePath, module string) ([]domain.TestID, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	defer f.Close()

	var tests []domain.TestID
	seen := make(map[string]bool)
	currentClass := ""

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if m := classPattern.FindStringSubmatch(line); m != nil {
			currentClass = m[1]
			continue
		}
		if m := funcPattern.FindStringSubmatch(line); m != nil {
			currentClass = ""
			id := domain.NewTestID(filePath, module, "", m[1])
			if !seen[id.Name] {
				seen[id.Name] = true
				tests = append(tests, id)
			}
			continue
		}
		if topLevelDefPattern.MatchString(line) {
			currentClass = ""
			continue
		}
		if m := methodPattern.FindStringSubmatch(line); m != nil && currentClass != "" {
			// Any class holding test_* methods counts; unittest does not
			// care what the class is called, so neither do we.
			id := domain.NewTestID(filePath, module, currentClass, m[1])
			if !seen[id.Name] {
				seen[id.Name] = true
				tests = append(tests, id)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	return tests, nil
}
