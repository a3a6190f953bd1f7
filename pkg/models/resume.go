package models

// PersonalInfo holds contact details extracted from the top of a resume.
// Every field is optional; extraction is best-effort.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// ExperienceEntry represents a single work-history item in document order
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry represents a single education item in document order
type EducationEntry struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
	GPA    string `json:"gpa,omitempty"`
}

// Project represents a single project item in document order
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ParsedResumeData is the structured form of a resume. The ordering of the
// experience, education and project slices mirrors document order so that
// positional suggestion anchors stay valid.
type ParsedResumeData struct {
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []string          `json:"skills"`
	Projects     []Project         `json:"projects"`

	// Confidence is a [0,1] estimate of parse reliability, not a match score
	Confidence float64 `json:"confidence"`
}

// AllText returns the concatenated free text of the resume. Used for
// keyword-frequency scoring where section boundaries do not matter.
func (r *ParsedResumeData) AllText() string {
	out := r.Summary
	for _, exp := range r.Experience {
		out += "\n" + exp.Title + " " + exp.Company + "\n" + exp.Description
	}
	for _, edu := range r.Education {
		out += "\n" + edu.Degree + " " + edu.School
	}
	for _, skill := range r.Skills {
		out += "\n" + skill
	}
	for _, proj := range r.Projects {
		out += "\n" + proj.Title + "\n" + proj.Description
	}
	return out
}
