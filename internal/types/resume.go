package types

// Project is one project entry from the extracted resume data.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Timeline     string   `json:"timeline,omitempty"`
}

// WorkExperience is one employment entry from the extracted resume data.
type WorkExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position,omitempty"`
	StartYear    int      `json:"start_year,omitempty"`
	EndYear      int      `json:"end_year,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// NumericClaim is a numeric achievement statement pulled out of the resume
// text by the upstream extraction stage ("solved 500+ problems", etc.).
type NumericClaim struct {
	Text  string `json:"claim"`
	Value string `json:"value"`
}

// ExtractedResume is the normalized resume structure supplied by the upstream
// extraction stage. The audit pipeline consumes it read-only.
type ExtractedResume struct {
	Name           string           `json:"name,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	University     string           `json:"university,omitempty"`
	CGPA           float64          `json:"cgpa,omitempty"`
	Skills         []string         `json:"skills,omitempty"`
	Projects       []Project        `json:"projects,omitempty"`
	WorkExperience []WorkExperience `json:"work_experience,omitempty"`
	NumericClaims  []NumericClaim   `json:"numeric_claims,omitempty"`
	GitHubUsername string           `json:"github_username,omitempty"`
	KaggleUsername string           `json:"kaggle_username,omitempty"`
	LinkedInURL    string           `json:"linkedin_url,omitempty"`
}

// ProjectTechnologies flattens the technology lists of all projects.
func (r *ExtractedResume) ProjectTechnologies() []string {
	var techs []string
	for _, p := range r.Projects {
		techs = append(techs, p.Technologies...)
	}
	return techs
}

// WorkTechnologies flattens the technology lists of all employment entries.
func (r *ExtractedResume) WorkTechnologies() []string {
	var techs []string
	for _, w := range r.WorkExperience {
		techs = append(techs, w.Technologies...)
	}
	return techs
}
