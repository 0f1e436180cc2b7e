package extract

import (
	"regexp"
	"strings"
)

var (
	trailingSpacePattern = regexp.MustCompile(`[ \t]+$`)
	blankRunPattern      = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes extracted text while preserving line structure: line
// endings become LF, trailing whitespace is stripped per line, and runs of
// blank lines collapse to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = trailingSpacePattern.ReplaceAllString(line, "")
		if strings.TrimSpace(line) == "" {
			line = ""
		}
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
