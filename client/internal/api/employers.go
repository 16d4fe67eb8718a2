package api

import (
	"context"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
)

const JobPostingsPath = "/employers/job-postings/"

// JobPostingPath returns the detail path for a posting.
func JobPostingPath(id int64) string { return JobPostingsPath + itoa(id) + "/" }

// ApplyPath returns the apply action path for a posting.
func ApplyPath(id int64) string { return JobPostingPath(id) + "apply/" }

// ListJobPostings lists postings, filtered by params (e.g. status, location).
func ListJobPostings(ctx context.Context, r Requester, params Params) ([]types.JobPosting, error) {
	return listOf[types.JobPosting](ctx, r, WithQuery(JobPostingsPath, params))
}

// GetJobPosting retrieves a posting.
func GetJobPosting(ctx context.Context, r Requester, id int64) (*types.JobPosting, error) {
	var jp types.JobPosting
	if err := getInto(ctx, r, JobPostingPath(id), &jp); err != nil {
		return nil, err
	}
	return &jp, nil
}

// ApplyForJob submits an application for the caller's student profile.
func ApplyForJob(ctx context.Context, r Requester, id int64, req types.JobApplicationRequest) (*types.JobApplication, error) {
	var app types.JobApplication
	if err := postInto(ctx, r, ApplyPath(id), req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
