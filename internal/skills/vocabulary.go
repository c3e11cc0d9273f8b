// Package skills matches résumé text against a fixed skill vocabulary.
package skills

import "strings"

// vocabulary is the closed, ordered list of skill phrases. Entries are lowercase.
var vocabulary = [...]string{
	"python", "java", "c++", "machine learning", "deep learning", "nlp",
	"data analysis", "streamlit", "pandas", "numpy", "matplotlib", "seaborn",
	"sql", "mysql", "html", "css", "javascript", "django", "flask",
	"scikit-learn", "tensorflow", "pytorch", "keras", "opencv",
}

// displayNames maps vocabulary entries to their conventional casing for human-facing output
var displayNames = map[string]string{
	"python":           "Python",
	"java":             "Java",
	"c++":              "C++",
	"machine learning": "Machine Learning",
	"deep learning":    "Deep Learning",
	"nlp":              "NLP",
	"data analysis":    "Data Analysis",
	"streamlit":        "Streamlit",
	"pandas":           "Pandas",
	"numpy":            "NumPy",
	"matplotlib":       "Matplotlib",
	"seaborn":          "Seaborn",
	"sql":              "SQL",
	"mysql":            "MySQL",
	"html":             "HTML",
	"css":              "CSS",
	"javascript":       "JavaScript",
	"django":           "Django",
	"flask":            "Flask",
	"scikit-learn":     "scikit-learn",
	"tensorflow":       "TensorFlow",
	"pytorch":          "PyTorch",
	"keras":            "Keras",
	"opencv":           "OpenCV",
}

// Vocabulary returns a copy of the skill vocabulary in declaration order.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary[:])
	return out
}

// DisplayName returns the conventional casing of a skill.
// Unknown skills are returned trimmed and otherwise unchanged.
func DisplayName(skill string) string {
	normalized := strings.TrimSpace(skill)
	if name, ok := displayNames[strings.ToLower(normalized)]; ok {
		return name
	}
	return normalized
}

// DisplayNames maps DisplayName over a list of skills.
func DisplayNames(skills []string) []string {
	out := make([]string, len(skills))
	for i, skill := range skills {
		out[i] = DisplayName(skill)
	}
	return out
}
