package jobs

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	internalErrors "github.com/pagesift/go-page-search/internal/errors"
	"github.com/pagesift/go-page-search/model"
)

func newTestManager() *Manager {
	return NewManager(2, zerolog.Nop())
}

func waitForStatus(t *testing.T, m *Manager, jobID string, want model.JobStatus) *model.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := m.GetJob(jobID)
		if err != nil {
			t.Fatalf("GetJob() error = %v", err)
		}
		if job.Status == want {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	job, _ := m.GetJob(jobID)
	t.Fatalf("job %s never reached status %s (last: %s)", jobID, want, job.Status)
	return nil
}

func TestCreateAndGetJob(t *testing.T) {
	m := newTestManager()
	defer m.Stop()

	jobID := m.CreateJob(model.JobTypeDocumentIngestion, "pages", map[string]string{"documents": "10"})

	job, err := m.GetJob(jobID)
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if job.Status != model.JobStatusPending {
		t.Errorf("new job status = %s, want %s", job.Status, model.JobStatusPending)
	}
	if job.IndexName != "pages" || job.Type != model.JobTypeDocumentIngestion {
		t.Errorf("job = %+v, want index and type preserved", job)
	}

	if _, err := m.GetJob("missing"); !errors.Is(err, internalErrors.ErrJobNotFound) {
		t.Errorf("GetJob(missing) error = %v, want %v", err, internalErrors.ErrJobNotFound)
	}
}

func TestExecuteJob_Completes(t *testing.T) {
	m := newTestManager()
	defer m.Stop()

	jobID := m.CreateJob(model.JobTypeDocumentIngestion, "pages", nil)
	err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		m.UpdateJobProgress(job.ID, 5, 10, "halfway")
		return nil
	})
	if err != nil {
		t.Fatalf("ExecuteJob() error = %v", err)
	}

	job := waitForStatus(t, m, jobID, model.JobStatusCompleted)
	if job.CompletedAt == nil {
		t.Error("completed job has no CompletedAt")
	}
	if job.Progress == nil || job.Progress.Current != 5 {
		t.Errorf("job progress = %+v, want current=5", job.Progress)
	}
}

func TestExecuteJob_Fails(t *testing.T) {
	m := newTestManager()
	defer m.Stop()

	jobID := m.CreateJob(model.JobTypeDocumentIngestion, "pages", nil)
	err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return fmt.Errorf("boom")
	})
	if err != nil {
		t.Fatalf("ExecuteJob() error = %v", err)
	}

	job := waitForStatus(t, m, jobID, model.JobStatusFailed)
	if job.Error != "boom" {
		t.Errorf("job error = %q, want %q", job.Error, "boom")
	}
}

func TestExecuteJob_RejectsNonPending(t *testing.T) {
	m := newTestManager()
	defer m.Stop()

	jobID := m.CreateJob(model.JobTypeDocumentIngestion, "pages", nil)
	if err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error { return nil }); err != nil {
		t.Fatalf("ExecuteJob() error = %v", err)
	}
	waitForStatus(t, m, jobID, model.JobStatusCompleted)

	if err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error { return nil }); err == nil {
		t.Error("ExecuteJob() on completed job should fail")
	}
}

func TestListJobs(t *testing.T) {
	m := newTestManager()
	defer m.Stop()

	id1 := m.CreateJob(model.JobTypeDocumentIngestion, "pages", nil)
	m.CreateJob(model.JobTypeDocumentIngestion, "other", nil)

	jobs := m.ListJobs("pages", nil)
	if len(jobs) != 1 || jobs[0].ID != id1 {
		t.Errorf("ListJobs(pages) = %v, want only %s", jobs, id1)
	}

	pending := model.JobStatusPending
	if got := m.ListJobs("pages", &pending); len(got) != 1 {
		t.Errorf("ListJobs(pages, pending) = %v, want 1", got)
	}
	failed := model.JobStatusFailed
	if got := m.ListJobs("pages", &failed); len(got) != 0 {
		t.Errorf("ListJobs(pages, failed) = %v, want none", got)
	}
}
