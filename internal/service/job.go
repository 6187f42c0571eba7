package service

import (
	"context"
	"errors"

	"github.com/openhire/jobboard-api/internal/database"
	"github.com/openhire/jobboard-api/internal/model"
	"github.com/openhire/jobboard-api/internal/repository"
)

// JobRepository defines the interface for job posting storage
type JobRepository interface {
	Create(ctx context.Context, fields *model.JobFields) (*model.Job, error)
	List(ctx context.Context) ([]*model.Job, error)
	GetByID(ctx context.Context, recordID string) (*model.Job, error)
	Merge(ctx context.Context, recordID string, fields map[string]interface{}) error
	Delete(ctx context.Context, recordID string) error
}

// JobService handles job posting operations
type JobService struct {
	jobRepo JobRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// Create stores a new job posting and returns it with its assigned ID.
func (s *JobService) Create(ctx context.Context, fields *model.JobFields) (*model.Job, error) {
	return s.jobRepo.Create(ctx, fields)
}

// List returns all job postings.
func (s *JobService) List(ctx context.Context) ([]*model.Job, error) {
	return s.jobRepo.List(ctx)
}

// Get retrieves a single job posting by its identifier.
func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	recordID, err := repository.JobRecordID(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	job, err := s.jobRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// Replace applies a full update to a job posting. Fields absent from the
// payload keep their stored values, so a replace with a sparse payload acts
// as a merge against the existing record. The record must already exist.
func (s *JobService) Replace(ctx context.Context, id string, patch *model.JobPatch) (*model.Job, error) {
	return s.merge(ctx, id, patch, true)
}

// Patch applies a partial update to a job posting. At least one field must
// be present in the payload.
func (s *JobService) Patch(ctx context.Context, id string, patch *model.JobPatch) (*model.Job, error) {
	if patch.IsEmpty() {
		return nil, ErrNoFields
	}
	return s.merge(ctx, id, patch, false)
}

// Delete removes a job posting.
func (s *JobService) Delete(ctx context.Context, id string) error {
	recordID, err := repository.JobRecordID(id)
	if err != nil {
		return ErrInvalidJobID
	}

	if err := s.jobRepo.Delete(ctx, recordID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	return nil
}

// merge verifies the record exists, writes the provided fields, and re-reads
// the record so the caller always sees the stored state after the update.
func (s *JobService) merge(ctx context.Context, id string, patch *model.JobPatch, allowEmpty bool) (*model.Job, error) {
	recordID, err := repository.JobRecordID(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	if _, err := s.jobRepo.GetByID(ctx, recordID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	fields := patch.Fields()
	if len(fields) > 0 {
		if err := s.jobRepo.Merge(ctx, recordID, fields); err != nil {
			return nil, err
		}
	} else if !allowEmpty {
		return nil, ErrNoFields
	}

	job, err := s.jobRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}
