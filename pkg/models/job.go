package models

// SalaryRange represents the salary information stated in a job posting
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	Period   string `json:"period,omitempty"` // hourly, monthly, yearly
}

// JobRequirements is the structured form of a job posting. RequiredSkills and
// PreferredSkills are disjoint: a skill qualified as required never appears in
// the preferred set.
type JobRequirements struct {
	RequiredSkills        []string     `json:"required_skills"`
	PreferredSkills       []string     `json:"preferred_skills"`
	ExperienceLevel       string       `json:"experience_level"` // entry, mid, senior, lead, executive
	ExperienceYears       int          `json:"experience_years,omitempty"`
	EducationRequirements []string     `json:"education_requirements"`
	Responsibilities      []string     `json:"responsibilities"`
	Technologies          []string     `json:"technologies"`
	Certifications        []string     `json:"certifications"`
	SoftSkills            []string     `json:"soft_skills"`
	IndustryKeywords      []string     `json:"industry_keywords"`
	JobLevel              string       `json:"job_level,omitempty"`
	Salary                *SalaryRange `json:"salary,omitempty"`
	Benefits              []string     `json:"benefits,omitempty"`
}

// IsEmpty reports whether extraction found nothing at all. An empty result is
// still a valid extraction, never an error.
func (j *JobRequirements) IsEmpty() bool {
	return len(j.RequiredSkills) == 0 && len(j.PreferredSkills) == 0 &&
		len(j.Technologies) == 0 && len(j.IndustryKeywords) == 0 &&
		len(j.Responsibilities) == 0 && len(j.EducationRequirements) == 0
}
