package model

// JobType represents the employment type of a posting
type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
)

// Valid reports whether t is one of the known job types.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract:
		return true
	}
	return false
}

// Job represents a job posting. The id is assigned by the store at creation
// and is immutable; postings carry no ownership link to the user that
// created them.
type Job struct {
	ID             string   `json:"id"`
	JobTitle       string   `json:"job_title"`
	JobDescription string   `json:"job_description"`
	SkillsRequired []string `json:"skills_required"`
	Qualifications string   `json:"qualifications"`
	CompanyName    string   `json:"company_name"`
	Location       string   `json:"location"`
	JobType        JobType  `json:"job_type"`
	Salary         float64  `json:"salary"`
}

// JobFields holds the writable fields of a posting, as submitted on create.
type JobFields struct {
	JobTitle       string
	JobDescription string
	SkillsRequired []string
	Qualifications string
	CompanyName    string
	Location       string
	JobType        JobType
	Salary         float64
}

// JobPatch is a sparse update: a nil field means "leave untouched". There is
// no set-to-null state; no posting field is clearable, so nil is the only
// absent marker needed.
type JobPatch struct {
	JobTitle       *string
	JobDescription *string
	SkillsRequired []string
	Qualifications *string
	CompanyName    *string
	Location       *string
	JobType        *JobType
	Salary         *float64
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *JobPatch) IsEmpty() bool {
	return p.JobTitle == nil &&
		p.JobDescription == nil &&
		p.SkillsRequired == nil &&
		p.Qualifications == nil &&
		p.CompanyName == nil &&
		p.Location == nil &&
		p.JobType == nil &&
		p.Salary == nil
}

// Fields returns the set fields keyed by their stored names, for use as a
// merge payload.
func (p *JobPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.JobTitle != nil {
		fields["job_title"] = *p.JobTitle
	}
	if p.JobDescription != nil {
		fields["job_description"] = *p.JobDescription
	}
	if p.SkillsRequired != nil {
		fields["skills_required"] = p.SkillsRequired
	}
	if p.Qualifications != nil {
		fields["qualifications"] = *p.Qualifications
	}
	if p.CompanyName != nil {
		fields["company_name"] = *p.CompanyName
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.JobType != nil {
		fields["job_type"] = string(*p.JobType)
	}
	if p.Salary != nil {
		fields["salary"] = *p.Salary
	}
	return fields
}
