package domain

import (
	"context"
	"errors"
)

// Common domain errors
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("missing required fields")
)

// Job is an external entity owned by the posting subsystem. The intake core
// only reads it, mainly for the PostedBy ownership check and display joins.
type Job struct {
	ID       int64  `json:"id"`
	PostedBy string `json:"posted_by"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

// JobRepository is the read-only lookup contract for jobs.
type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*Job, error)
}
