package extraction

import "strings"

// Skill vocabulary used by the extractor. Extraction never reports a skill
// outside this list; iteration order is fixed so extraction output is
// deterministic.
var skillVocabulary = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js",
	"django", "flask", "fastapi", "sql", "mysql", "postgresql", "mongodb",
	"redis", "aws", "azure", "gcp", "docker", "kubernetes", "git", "jenkins",
	"terraform", "ansible", "machine learning", "deep learning", "tensorflow",
	"pytorch", "scikit-learn", "data science", "pandas", "numpy",
	"matplotlib", "seaborn", "tableau", "powerbi", "html", "css",
	"bootstrap", "sass", "webpack", "babel", "typescript", "graphql",
	"rest api", "microservices", "agile", "scrum", "devops", "ci/cd",
	"testing", "selenium", "junit", "pytest", "cypress", "linux", "unix",
	"bash", "powershell",
}

// Ordered seniority table. Scores are level/10.
var positionLevels = []struct {
	Keyword string
	Level   int
}{
	{"intern", 1},
	{"junior", 2},
	{"associate", 3},
	{"mid-level", 4},
	{"senior", 5},
	{"lead", 6},
	{"principal", 7},
	{"manager", 8},
	{"director", 9},
	{"vp", 10},
	{"cto", 10},
	{"ceo", 10},
}

// Job-title keywords that anchor position extraction in both strategies.
var jobTitleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "specialist",
	"coordinator", "director", "lead", "senior", "junior", "intern",
}

// Vocabulary returns the fixed skill vocabulary in its canonical order.
func Vocabulary() []string {
	out := make([]string, len(skillVocabulary))
	copy(out, skillVocabulary)
	return out
}

// SeniorityLevelScore scans a position string for seniority keywords and
// returns the highest normalized level found, or 0 when none is present.
func SeniorityLevelScore(position string) float64 {
	lower := strings.ToLower(position)
	score := 0.0
	for _, pl := range positionLevels {
		if strings.Contains(lower, pl.Keyword) {
			s := float64(pl.Level) / 10.0
			if s > score {
				score = s
			}
		}
	}
	return score
}
