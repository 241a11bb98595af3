package extraction

import (
	"regexp"
	"strings"
)

// SkillMention is one recognized skill occurrence with optional context.
// Empty Company/Position and nil Years mean the context was not found.
type SkillMention struct {
	Skill    string `json:"skill"`
	Years    *int   `json:"years,omitempty"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
}

// EntityTagger recognizes organization names in free text. When a tagger is
// available the extractor uses it for company detection; otherwise it falls
// back to regex heuristics. Callers see the same output shape either way.
type EntityTagger interface {
	Organizations(text string) []string
}

type Extractor struct {
	tagger EntityTagger
}

// NewExtractor builds an extractor. A nil tagger selects the regex fallback
// strategy.
func NewExtractor(tagger EntityTagger) *Extractor {
	return &Extractor{tagger: tagger}
}

var (
	companyAtPattern     = regexp.MustCompile(`(?:at|@|with)\s+([A-Z][a-zA-Z\s&\.]+?)(?:\s|,|\.|\n)`)
	companySuffixPattern = regexp.MustCompile(`([A-Z][a-zA-Z\s&\.]{2,})\s+(?:inc|corp|llc|ltd)`)
)

// Extract returns one mention per vocabulary skill present in the text.
// Every mention carries the first extracted company and the first extracted
// position; that reuse mirrors the upstream behavior and is deliberate.
// Extract never fails: empty or unparseable text yields an empty slice.
func (e *Extractor) Extract(text string) []SkillMention {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var companies, positions []string
	if e != nil && e.tagger != nil {
		companies = e.tagger.Organizations(text)
		positions = positionsFromTokens(text)
	} else {
		companies = companiesFromPatterns(text)
		positions = positionsFromPatterns(text)
	}

	skillYears := YearsOfExperience(text)

	firstCompany := ""
	if len(companies) > 0 {
		firstCompany = companies[0]
	}
	firstPosition := ""
	if len(positions) > 0 {
		firstPosition = positions[0]
	}

	lower := strings.ToLower(text)
	mentions := make([]SkillMention, 0)
	for _, skill := range skillVocabulary {
		if !strings.Contains(lower, skill) {
			continue
		}
		m := SkillMention{
			Skill:    skill,
			Company:  firstCompany,
			Position: firstPosition,
		}
		if y, ok := skillYears[skill]; ok {
			years := y
			m.Years = &years
		}
		mentions = append(mentions, m)
	}
	return mentions
}

// positionsFromTokens captures a two-token window on each side of every
// job-title keyword hit.
func positionsFromTokens(text string) []string {
	tokens := strings.Fields(text)
	keywords := make(map[string]struct{}, len(jobTitleKeywords))
	for _, kw := range jobTitleKeywords {
		keywords[kw] = struct{}{}
	}

	var positions []string
	for i, tok := range tokens {
		clean := strings.ToLower(strings.Trim(tok, ".,;:!?"))
		if _, ok := keywords[clean]; !ok {
			continue
		}
		start := i - 2
		if start < 0 {
			start = 0
		}
		end := i + 3
		if end > len(tokens) {
			end = len(tokens)
		}
		positions = append(positions, strings.Join(tokens[start:end], " "))
	}
	return positions
}

func companiesFromPatterns(text string) []string {
	var companies []string
	for _, pattern := range []*regexp.Regexp{companyAtPattern, companySuffixPattern} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			if len(name) > 2 {
				companies = append(companies, name)
			}
		}
	}
	return companies
}

func positionsFromPatterns(text string) []string {
	lower := strings.ToLower(text)
	var positions []string
	for _, kw := range jobTitleKeywords {
		pattern := regexp.MustCompile(`([a-z\s]*` + kw + `[a-z\s]*)`)
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			p := strings.TrimSpace(m[1])
			if p != "" {
				positions = append(positions, p)
			}
		}
	}
	return positions
}
