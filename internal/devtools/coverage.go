package devtools

import (
	"regexp"
	"strconv"
	"strings"
)

// totalLinePattern matches the total line of a coverage report, both
// go's "total:" per-function line and tabular "TOTAL" summaries.
var totalLinePattern = regexp.MustCompile(`(?im)^\s*total\b.*?(\d+(?:\.\d+)?)%`)

// ParseCoveragePercent extracts the total coverage percentage from a
// coverage report. Returns false when no total line is present.
func ParseCoveragePercent(output string) (float64, bool) {
	match := totalLinePattern.FindStringSubmatch(output)
	if match == nil {
		return 0, false
	}
	percent, err := strconv.ParseFloat(strings.TrimSpace(match[1]), 64)
	if err != nil {
		return 0, false
	}
	return percent, true
}
