package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// Templates matching "<N> years [of] <skill>" and "<skill> [for] <N> years"
// in both orders. Applied to lower-cased text.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s+years?\s+(?:of\s+)?(?:experience\s+(?:in\s+|with\s+)?)?([a-z\s\-\.]+)`),
	regexp.MustCompile(`([a-z\s\-\.]+)\s+for\s+(\d+)\s+years?`),
	regexp.MustCompile(`(\d+)\+?\s+years?\s+([a-z\s\-\.]+)`),
	regexp.MustCompile(`([a-z\s\-\.]+)\s+(\d+)\+?\s+years?`),
}

// YearsOfExperience extracts per-skill year counts from free text. A captured
// phrase is attributed to a vocabulary skill when either contains the other;
// when several phrasings yield years for the same skill the maximum wins.
func YearsOfExperience(text string) map[string]int {
	lower := strings.ToLower(text)
	skillYears := make(map[string]int)

	for _, pattern := range yearPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			if len(m) != 3 {
				continue
			}

			var phrase string
			var years int
			if n, err := strconv.Atoi(m[1]); err == nil {
				phrase = strings.TrimSpace(m[2])
				years = n
			} else if n, err := strconv.Atoi(m[2]); err == nil {
				phrase = strings.TrimSpace(m[1])
				years = n
			} else {
				continue
			}
			if phrase == "" || years < 0 {
				continue
			}

			for _, skill := range skillVocabulary {
				if strings.Contains(phrase, skill) || strings.Contains(skill, phrase) {
					if years > skillYears[skill] {
						skillYears[skill] = years
					}
				}
			}
		}
	}

	return skillYears
}
