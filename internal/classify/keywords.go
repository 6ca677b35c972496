package classify

// Rule binds a category label to the keyword list that selects it. Declaration
// order is significant: the filename stage returns the first matching category,
// content-stage ties resolve toward the earlier entry, and the fallback is the
// last entry in the table.
type Rule struct {
	Name     string
	Keywords []string
}

// Rules is the fixed category table. Keywords are matched as substrings of
// normalized text, so multi-word phrases work but anything containing a
// character outside [a-z0-9 ] can never hit.
var Rules = []Rule{
	{
		Name: "University Docs",
		Keywords: []string{
			"semester", "academic year", "credits", "course code",
			"roll number", "student name", "department", "university",
			"registrar", "faculty", "dean",
			"enrollment", "registration", "approved", "submitted",
			"internship approval", "student id", "application",
			"issued by", "official", "signature", "seal",
		},
	},
	{
		Name: "Capstone Work",
		Keywords: []string{
			"abstract", "introduction", "methodology", "results",
			"evaluation", "discussion", "conclusion", "references",
			"proposal", "milestone", "phase", "final submission",
			"capstone project", "design", "implementation",
			"slides", "presentation", "data collection",
			"experiment", "analysis",
		},
	},
	{
		Name: "Technical Work",
		Keywords: []string{
			"endpoint", "api", "pipeline", "build", "deployment",
			"server", "yaml", "json", "config", "docker", "kubernetes",
			"automate", "monitor", "logging", "debug", "ci/cd",
			"infrastructure", "version", "changelog",
			"developer", "engineer", "technical documentation",
			"readme", "implementation",
		},
	},
}

// Categories returns the category labels in declaration order.
func Categories() []string {
	names := make([]string, len(Rules))
	for i, r := range Rules {
		names[i] = r.Name
	}
	return names
}

// Fallback is the category returned when neither classification stage is
// conclusive.
func Fallback() string {
	return Rules[len(Rules)-1].Name
}
