package parser

import (
	"regexp"
	"strconv"
	"strings"

	"simtool/internal/domain"
)

// UnittestParser parses Python unittest text output.
type UnittestParser struct{}

// NewUnittestParser creates a new UnittestParser.
func NewUnittestParser() *UnittestParser {
	return &UnittestParser{}
}

var (
	// FAIL: test_single (scheduler.test_scheduler.TestScheduler)
	failureHeaderPattern = regexp.MustCompile(`^(FAIL|ERROR):\s+(\S+)(?:\s+\((\S+)\))?`)
	// Ran 3 tests in 0.004s
	ranPattern = regexp.MustCompile(`Ran\s+(\d+)\s+tests?`)
	// FAILED (failures=1, errors=2)
	failuresPattern = regexp.MustCompile(`failures=(\d+)`)
	errorsPattern   = regexp.MustCompile(`errors=(\d+)`)
	//   File "/path/test/scheduler/test_scheduler.py", line 123, in test_single
	framePattern = regexp.MustCompile(`^\s*File\s+"([^"]+)",\s+line\s+(\d+)`)

	headerSeparator = strings.Repeat("=", 70)
	bodySeparator   = strings.Repeat("-", 70)
)

// ParseCounts extracts passed and failed test case counts from unittest
// output. If parsing fails it falls back to one case per invocation.
func (p *UnittestParser) ParseCounts(result domain.TestResult) (passed, failed int) {
	output := result.Output

	var total int
	if m := ranPattern.FindStringSubmatch(output); len(m) >= 2 {
		total, _ = strconv.Atoi(m[1])
	}
	if m := failuresPattern.FindStringSubmatch(output); len(m) >= 2 {
		n, _ := strconv.Atoi(m[1])
		failed += n
	}
	if m := errorsPattern.FindStringSubmatch(output); len(m) >= 2 {
		n, _ := strconv.Atoi(m[1])
		failed += n
	}
	if total >= failed {
		passed = total - failed
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	// Fallback: one case per invocation
	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// ParseFailures extracts failure details from unittest output. Each
// failure block starts with a ==== separator followed by a
// "FAIL: name (Class)" header and a ---- separator, then a traceback
// and an assertion message.
func (p *UnittestParser) ParseFailures(result domain.TestResult) []domain.TestFailure {
	var failures []domain.TestFailure
	lines := strings.Split(result.Output, "\n")

	for i := 0; i < len(lines); i++ {
		m := failureHeaderPattern.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		failure, next := p.parseFailureBlock(lines, i, m)
		failures = append(failures, failure)
		i = next
	}

	if len(failures) == 0 && !result.Success {
		// Framework crashed or produced unparseable output; keep the
		// tail so the viewer has something to show.
		failures = append(failures, domain.TestFailure{
			TestName: result.Test.Name,
			Kind:     "ERROR",
			Message:  tail(result.Output, 20),
		})
	}

	return failures
}

// parseFailureBlock parses one failure starting at the header line i.
// Returns the failure and the index of the last consumed line.
func (p *UnittestParser) parseFailureBlock(lines []string, i int, header []string) (domain.TestFailure, int) {
	name := header[2]
	if header[3] != "" {
		// Python 3.11+ already prints the fully qualified name in the
		// parenthesised part.
		if strings.HasSuffix(header[3], "."+header[2]) {
			name = header[3]
		} else {
			name = header[3] + "." + header[2]
		}
	}
	failure := domain.TestFailure{
		TestName:  name,
		Kind:      header[1],
		Traceback: []string{},
	}

	var messageLines []string
	j := i + 1
	for ; j < len(lines); j++ {
		line := lines[j]
		trimmed := strings.TrimSpace(line)

		if trimmed == headerSeparator {
			// next failure block follows
			break
		}
		if trimmed == bodySeparator || trimmed == "Traceback (most recent call last):" {
			continue
		}
		if m := framePattern.FindStringSubmatch(line); m != nil {
			failure.Traceback = append(failure.Traceback, trimmed)
			// report the innermost frame
			failure.File = m[1]
			failure.Line, _ = strconv.Atoi(m[2])
			continue
		}
		if ranPattern.MatchString(line) {
			break
		}
		if len(failure.Traceback) > 0 && trimmed != "" && strings.HasPrefix(line, " ") {
			// source line echoed under a traceback frame
			continue
		}
		if trimmed != "" || len(messageLines) > 0 {
			messageLines = append(messageLines, line)
		}
	}

	for len(messageLines) > 0 && strings.TrimSpace(messageLines[len(messageLines)-1]) == "" {
		messageLines = messageLines[:len(messageLines)-1]
	}
	failure.Message = strings.Join(messageLines, "\n")

	return failure, j - 1
}

// tail returns the last n lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
