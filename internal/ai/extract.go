package ai

import (
	"fmt"
	"regexp"
	"strings"
)

// Models wrap their JSON in prose or markdown fences more often than
// not. The contract is crude on purpose: take the first top-level
// object or array match and hand it to the JSON decoder.
var (
	objectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	arrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
)

// ExtractJSON returns the first JSON object or array embedded in text.
func ExtractJSON(text string) (string, error) {
	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")

	var match string
	switch {
	case objIdx >= 0 && (arrIdx < 0 || objIdx < arrIdx):
		match = objectPattern.FindString(text)
	case arrIdx >= 0:
		match = arrayPattern.FindString(text)
	}
	if match == "" {
		return "", fmt.Errorf("no JSON payload found in response")
	}
	return match, nil
}
