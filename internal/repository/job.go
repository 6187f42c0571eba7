package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/openhire/jobboard-api/internal/database"
	"github.com/openhire/jobboard-api/internal/model"
)

// jobTable is the SurrealDB table holding job postings.
const jobTable = "job_posting"

// listLimit caps unpaginated listing queries.
const listLimit = 1000

// recordKeyPattern matches the key part of a SurrealDB record ID.
var recordKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// JobRecordID normalizes a client-supplied identifier into a full
// job_posting record ID. Malformed identifiers are rejected before any
// query runs so they can never be mistaken for missing records.
func JobRecordID(id string) (string, error) {
	key := strings.TrimPrefix(id, jobTable+":")
	if !recordKeyPattern.MatchString(key) {
		return "", database.ErrInvalidID
	}
	return jobTable + ":" + key, nil
}

// JobRepository handles job posting data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job posting and returns the stored record.
func (r *JobRepository) Create(ctx context.Context, fields *model.JobFields) (*model.Job, error) {
	query := `
		CREATE job_posting CONTENT {
			job_title: $job_title,
			job_description: $job_description,
			skills_required: $skills_required,
			qualifications: $qualifications,
			company_name: $company_name,
			location: $location,
			job_type: $job_type,
			salary: $salary
		}
	`

	vars := map[string]interface{}{
		"job_title":       fields.JobTitle,
		"job_description": fields.JobDescription,
		"skills_required": fields.SkillsRequired,
		"qualifications":  fields.Qualifications,
		"company_name":    fields.CompanyName,
		"location":        fields.Location,
		"job_type":        string(fields.JobType),
		"salary":          fields.Salary,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	created, ok := extractQueryResults(result)
	if !ok || len(created) == 0 {
		return nil, errors.New("no result returned")
	}
	return parseJobResult(created[0])
}

// List returns all job postings, capped at listLimit records.
func (r *JobRepository) List(ctx context.Context) ([]*model.Job, error) {
	query := `SELECT * FROM job_posting LIMIT $limit`
	vars := map[string]interface{}{"limit": listLimit}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Job{}, nil
	}

	jobs := make([]*model.Job, 0, len(records))
	for _, record := range records {
		job, err := parseJobResult(record)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// GetByID retrieves a job posting by its full record ID.
func (r *JobRepository) GetByID(ctx context.Context, recordID string) (*model.Job, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": recordID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	return parseJobResult(result)
}

// Merge applies a partial update to a job posting. Only the keys present in
// fields are written; all other stored fields are left untouched.
func (r *JobRepository) Merge(ctx context.Context, recordID string, fields map[string]interface{}) error {
	query := `UPDATE type::record($id) MERGE $fields`
	vars := map[string]interface{}{
		"id":     recordID,
		"fields": fields,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a job posting. Returns database.ErrNotFound when no record
// with the given ID existed.
func (r *JobRepository) Delete(ctx context.Context, recordID string) error {
	query := `DELETE type::record($id) RETURN BEFORE`
	vars := map[string]interface{}{"id": recordID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	deleted, ok := extractQueryResults(result)
	if !ok || len(deleted) == 0 {
		return database.ErrNotFound
	}
	return nil
}

func parseJobResult(result interface{}) (*model.Job, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	// Handle array wrapper
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return &model.Job{
		ID:             convertSurrealID(data["id"]),
		JobTitle:       getString(data, "job_title"),
		JobDescription: getString(data, "job_description"),
		SkillsRequired: getStringSlice(data, "skills_required"),
		Qualifications: getString(data, "qualifications"),
		CompanyName:    getString(data, "company_name"),
		Location:       getString(data, "location"),
		JobType:        model.JobType(getString(data, "job_type")),
		Salary:         getFloat(data, "salary"),
	}, nil
}
