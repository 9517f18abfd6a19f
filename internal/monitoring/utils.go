package monitoring

import (
	"regexp"
	"strings"
)

// reFuncName splits a runtime function name into package, optional
// receiver, and method parts.
var reFuncName = regexp.MustCompile(`(?:[^/]+/)*([^./]+)\.(?:\(?\*?([^.)]+)\)?\.)?(.+)$`)

// getSegmentName shortens names returned by runtime.FuncForPC, e.g.
// "github.com/mconway/firefly-iii/internal/services.(*ruleBatch).ExecuteRuleGroup"
// becomes "services.ruleBatch.ExecuteRuleGroup".
func getSegmentName(fullFuncName string) string {
	matches := reFuncName.FindStringSubmatch(fullFuncName)
	if len(matches) < 4 {
		return fullFuncName
	}

	parts := make([]string, 0, 3)
	for _, part := range matches[1:] {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ".")
}
