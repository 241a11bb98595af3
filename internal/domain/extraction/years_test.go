package extraction

import "testing"

func TestYearsOfExperience_BasicPhrase(t *testing.T) {
	got := YearsOfExperience("I have 5 years of docker experience")
	if got["docker"] != 5 {
		t.Fatalf("expected docker=5, got %v", got)
	}
}

func TestYearsOfExperience_ReversedPhrase(t *testing.T) {
	got := YearsOfExperience("docker for 3 years")
	if got["docker"] != 3 {
		t.Fatalf("expected docker=3, got %v", got)
	}
}

func TestYearsOfExperience_MaxWinsAcrossPhrasings(t *testing.T) {
	got := YearsOfExperience("docker for 3 years. later 5 years of docker in production.")
	if got["docker"] != 5 {
		t.Fatalf("expected max-merge docker=5, got %v", got)
	}
}

func TestYearsOfExperience_SubstringAttribution(t *testing.T) {
	// "sql" is contained in "mysql" and "postgresql"; the containment check
	// runs both directions so all three receive the year count.
	got := YearsOfExperience("sql for 4 years")
	for _, skill := range []string{"sql", "mysql", "postgresql"} {
		if got[skill] != 4 {
			t.Fatalf("expected %s=4, got %v", skill, got)
		}
	}
}

func TestYearsOfExperience_EmptyText(t *testing.T) {
	if got := YearsOfExperience(""); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestYearsOfExperience_NoYearPhrases(t *testing.T) {
	if got := YearsOfExperience("python and docker enthusiast"); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestSeniorityLevelScore(t *testing.T) {
	cases := []struct {
		position string
		want     float64
	}{
		{"senior software engineer", 0.5},
		{"junior developer", 0.2},
		{"vp of engineering", 1.0},
		{"intern", 0.1},
		{"gardener", 0},
		{"", 0},
		// The highest matching keyword wins.
		{"senior manager", 0.8},
	}
	for _, c := range cases {
		if got := SeniorityLevelScore(c.position); got != c.want {
			t.Fatalf("SeniorityLevelScore(%q) = %v, want %v", c.position, got, c.want)
		}
	}
}
