package handler

import (
	"context"
	"net/http"

	"github.com/openhire/jobboard-api/internal/model"
)

// JobService defines the interface for job posting operations
type JobService interface {
	Create(ctx context.Context, fields *model.JobFields) (*model.Job, error)
	List(ctx context.Context) ([]*model.Job, error)
	Get(ctx context.Context, id string) (*model.Job, error)
	Replace(ctx context.Context, id string, patch *model.JobPatch) (*model.Job, error)
	Patch(ctx context.Context, id string, patch *model.JobPatch) (*model.Job, error)
	Delete(ctx context.Context, id string) error
}

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobService JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// JobRequest represents the create endpoint request body. All fields are
// required; salary is a pointer so an absent value can be told apart from
// an explicit zero.
type JobRequest struct {
	JobTitle       string   `json:"job_title"`
	JobDescription string   `json:"job_description"`
	SkillsRequired []string `json:"skills_required"`
	Qualifications string   `json:"qualifications"`
	CompanyName    string   `json:"company_name"`
	Location       string   `json:"location"`
	JobType        string   `json:"job_type"`
	Salary         *float64 `json:"salary"`
}

// JobUpdateRequest represents the update endpoint request body. Every field
// is optional; absent fields keep their stored values.
type JobUpdateRequest struct {
	JobTitle       *string  `json:"job_title"`
	JobDescription *string  `json:"job_description"`
	SkillsRequired []string `json:"skills_required"`
	Qualifications *string  `json:"qualifications"`
	CompanyName    *string  `json:"company_name"`
	Location       *string  `json:"location"`
	JobType        *string  `json:"job_type"`
	Salary         *float64 `json:"salary"`
}

func (req *JobRequest) validate() []model.FieldError {
	var fields []model.FieldError

	required := []struct {
		name  string
		value string
	}{
		{"job_title", req.JobTitle},
		{"job_description", req.JobDescription},
		{"qualifications", req.Qualifications},
		{"company_name", req.CompanyName},
		{"location", req.Location},
	}
	for _, f := range required {
		if f.value == "" {
			fields = append(fields, model.FieldError{Field: f.name, Message: "field required"})
		}
	}

	if req.SkillsRequired == nil {
		fields = append(fields, model.FieldError{Field: "skills_required", Message: "field required"})
	}

	if req.JobType == "" {
		fields = append(fields, model.FieldError{Field: "job_type", Message: "field required"})
	} else if !model.JobType(req.JobType).Valid() {
		fields = append(fields, model.FieldError{Field: "job_type", Message: "must be one of: full-time, part-time, contract"})
	}

	if req.Salary == nil {
		fields = append(fields, model.FieldError{Field: "salary", Message: "field required"})
	} else if *req.Salary < 0 {
		fields = append(fields, model.FieldError{Field: "salary", Message: "must not be negative"})
	}

	return fields
}

func (req *JobUpdateRequest) validate() []model.FieldError {
	var fields []model.FieldError

	if req.JobType != nil && !model.JobType(*req.JobType).Valid() {
		fields = append(fields, model.FieldError{Field: "job_type", Message: "must be one of: full-time, part-time, contract"})
	}
	if req.Salary != nil && *req.Salary < 0 {
		fields = append(fields, model.FieldError{Field: "salary", Message: "must not be negative"})
	}

	return fields
}

func (req *JobUpdateRequest) toPatch() *model.JobPatch {
	patch := &model.JobPatch{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		SkillsRequired: req.SkillsRequired,
		Qualifications: req.Qualifications,
		CompanyName:    req.CompanyName,
		Location:       req.Location,
		Salary:         req.Salary,
	}
	if req.JobType != nil {
		jobType := model.JobType(*req.JobType)
		patch.JobType = &jobType
	}
	return patch
}

// Create handles POST /jobs/
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fields := req.validate(); len(fields) > 0 {
		WriteError(w, model.NewValidationError(fields))
		return
	}

	job, err := h.jobService.Create(r.Context(), &model.JobFields{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		SkillsRequired: req.SkillsRequired,
		Qualifications: req.Qualifications,
		CompanyName:    req.CompanyName,
		Location:       req.Location,
		JobType:        model.JobType(req.JobType),
		Salary:         *req.Salary,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// List handles GET /jobs/
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, jobs)
}

// Get handles GET /jobs/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Put handles PUT /jobs/{id}
func (h *JobHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req JobUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fields := req.validate(); len(fields) > 0 {
		WriteError(w, model.NewValidationError(fields))
		return
	}

	job, err := h.jobService.Replace(r.Context(), r.PathValue("id"), req.toPatch())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Patch handles PATCH /jobs/{id}
func (h *JobHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req JobUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fields := req.validate(); len(fields) > 0 {
		WriteError(w, model.NewValidationError(fields))
		return
	}

	job, err := h.jobService.Patch(r.Context(), r.PathValue("id"), req.toPatch())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Delete handles DELETE /jobs/{id}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Msg: "Job deleted successfully"})
}
