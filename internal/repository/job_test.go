package repository

import (
	"errors"
	"testing"

	"github.com/openhire/jobboard-api/internal/database"
	"github.com/openhire/jobboard-api/internal/model"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestJobRecordID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare key", input: "abc123", want: "job_posting:abc123"},
		{name: "full record id", input: "job_posting:abc123", want: "job_posting:abc123"},
		{name: "empty", input: "", wantErr: true},
		{name: "injection attempt", input: "abc; DELETE job_posting", wantErr: true},
		{name: "wrong table", input: "user:abc123", wantErr: true},
		{name: "embedded quote", input: `abc"123`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JobRecordID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, database.ErrInvalidID) {
					t.Fatalf("expected ErrInvalidID, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseJobResult(t *testing.T) {
	result := map[string]interface{}{
		"status": "OK",
		"result": []interface{}{
			map[string]interface{}{
				"id":              models.RecordID{Table: "job_posting", ID: "xyz789"},
				"job_title":       "Backend Engineer",
				"job_description": "Build APIs",
				"skills_required": []interface{}{"go", "surrealdb"},
				"qualifications":  "BSc or equivalent",
				"company_name":    "OpenHire",
				"location":        "Remote",
				"job_type":        "full-time",
				"salary":          float64(120000),
			},
		},
	}

	job, err := parseJobResult(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != "job_posting:xyz789" {
		t.Errorf("ID = %q, want %q", job.ID, "job_posting:xyz789")
	}
	if job.JobTitle != "Backend Engineer" {
		t.Errorf("JobTitle = %q", job.JobTitle)
	}
	if len(job.SkillsRequired) != 2 || job.SkillsRequired[0] != "go" {
		t.Errorf("SkillsRequired = %v", job.SkillsRequired)
	}
	if job.JobType != model.JobTypeFullTime {
		t.Errorf("JobType = %q", job.JobType)
	}
	if job.Salary != 120000 {
		t.Errorf("Salary = %v", job.Salary)
	}
}

func TestGetFloatIntegerEncodings(t *testing.T) {
	// CBOR decodes whole numbers as uint64 (non-negative) or int64
	// (negative) rather than float64.
	tests := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"float64", float64(120000.50), 120000.50},
		{"uint64", uint64(120000), 120000},
		{"int64", int64(-5), -5},
		{"missing", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]interface{}{}
			if tt.value != nil {
				m["salary"] = tt.value
			}
			if got := getFloat(m, "salary"); got != tt.want {
				t.Errorf("getFloat = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseJobResultIntegerSalary(t *testing.T) {
	result := map[string]interface{}{
		"status": "OK",
		"result": []interface{}{
			map[string]interface{}{
				"id":              models.RecordID{Table: "job_posting", ID: "int1"},
				"job_title":       "Data Engineer",
				"job_description": "Pipelines",
				"skills_required": []interface{}{"go"},
				"qualifications":  "BSc",
				"company_name":    "OpenHire",
				"location":        "Remote",
				"job_type":        "contract",
				"salary":          uint64(95000),
			},
		},
	}

	job, err := parseJobResult(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Salary != 95000 {
		t.Errorf("Salary = %v, want 95000", job.Salary)
	}
}

func TestParseJobResultNotFound(t *testing.T) {
	cases := []interface{}{
		nil,
		map[string]interface{}{"status": "OK", "result": []interface{}{}},
		[]interface{}{},
	}
	for _, result := range cases {
		if _, err := parseJobResult(result); !errors.Is(err, database.ErrNotFound) {
			t.Errorf("result %#v: expected ErrNotFound, got %v", result, err)
		}
	}
}

func TestParseUserResult(t *testing.T) {
	result := map[string]interface{}{
		"status": "OK",
		"result": []interface{}{
			map[string]interface{}{
				"id":       models.RecordID{Table: "user", ID: "abc"},
				"username": "alice",
				"hash":     "$2a$12$fakehash",
			},
		},
	}

	user, err := parseUserResult(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q", user.Username)
	}
	if user.Hash != "$2a$12$fakehash" {
		t.Errorf("Hash = %q", user.Hash)
	}
}

func TestIsUniqueConstraintError(t *testing.T) {
	if isUniqueConstraintError(nil) {
		t.Error("nil should not match")
	}
	if !isUniqueConstraintError(errors.New("index `username_idx` already contains 'alice', duplicate entry")) {
		t.Error("duplicate entry should match")
	}
	if isUniqueConstraintError(errors.New("connection refused")) {
		t.Error("connection error should not match")
	}
}
