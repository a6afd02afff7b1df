// Package tracker manages job applications alongside the resume.
//
// Valid status graph:
//
//	Wishlist ──► Applied ──► Interview ──► Offer
//	    │           │            │           │
//	    └───────────┴────────────┴───────────┴──► Rejected
//
// Rejected is terminal.
package tracker

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/store"
)

// Status is a job application's pipeline stage.
type Status string

const (
	StatusWishlist  Status = "Wishlist"
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
)

// validTransitions lists every allowed (from -> to) pair.
var validTransitions = map[Status][]Status{
	StatusWishlist:  {StatusApplied, StatusRejected},
	StatusApplied:   {StatusInterview, StatusRejected},
	StatusInterview: {StatusOffer, StatusRejected},
	StatusOffer:     {StatusRejected},
	// Rejected is terminal, no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values. Matching is case insensitive.
func ParseStatus(s string) (Status, error) {
	for _, st := range []Status{StatusWishlist, StatusApplied, StatusInterview, StatusOffer, StatusRejected} {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", &UnknownStatusError{Value: s}
}

// IsTransitionAllowed returns true when moving from -> to is permitted
// by the state machine.
func IsTransitionAllowed(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Job is one tracked application.
type Job struct {
	ID          string `json:"id"`
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Status      Status `json:"status"`
	DateApplied string `json:"dateApplied"`
	Notes       string `json:"notes"`
	Link        string `json:"link" validate:"omitempty,url"`
}

// Tracker persists jobs through the store under a single key per
// profile namespace.
type Tracker struct {
	store     store.Store
	namespace string
	validate  *validator.Validate
}

// New returns a Tracker bound to a profile namespace.
func New(s store.Store, namespace string) *Tracker {
	return &Tracker{
		store:     s,
		namespace: namespace,
		validate:  validator.New(),
	}
}

// List returns all jobs, most recently applied first.
func (t *Tracker) List() ([]Job, error) {
	jobs, err := t.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].DateApplied > jobs[j].DateApplied
	})
	return jobs, nil
}

// Add validates and stores a new job. A missing status defaults to
// Applied with today's date, matching how applications usually enter
// the tracker.
func (t *Tracker) Add(job Job) (Job, error) {
	if job.ID == "" {
		job.ID = schema.NewID()
	}
	if job.Status == "" {
		job.Status = StatusApplied
	}
	if job.DateApplied == "" && job.Status != StatusWishlist {
		job.DateApplied = time.Now().Format("2006-01-02")
	}

	if _, err := ParseStatus(string(job.Status)); err != nil {
		return Job{}, err
	}
	if err := t.validate.Struct(job); err != nil {
		return Job{}, &InvalidJobError{Cause: err}
	}

	jobs, err := t.load()
	if err != nil {
		return Job{}, err
	}
	jobs = append(jobs, job)
	return job, t.save(jobs)
}

// Update replaces an existing job wholesale after validation. Status
// changes must follow the transition graph.
func (t *Tracker) Update(job Job) error {
	if err := t.validate.Struct(job); err != nil {
		return &InvalidJobError{Cause: err}
	}

	jobs, err := t.load()
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID != job.ID {
			continue
		}
		if jobs[i].Status != job.Status && !IsTransitionAllowed(jobs[i].Status, job.Status) {
			return &TransitionError{From: jobs[i].Status, To: job.Status}
		}
		jobs[i] = job
		return t.save(jobs)
	}
	return &JobNotFoundError{ID: job.ID}
}

// Move advances a job to a new pipeline stage.
func (t *Tracker) Move(id string, to Status) error {
	jobs, err := t.load()
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID != id {
			continue
		}
		if !IsTransitionAllowed(jobs[i].Status, to) {
			return &TransitionError{From: jobs[i].Status, To: to}
		}
		jobs[i].Status = to
		if to == StatusApplied && jobs[i].DateApplied == "" {
			jobs[i].DateApplied = time.Now().Format("2006-01-02")
		}
		return t.save(jobs)
	}
	return &JobNotFoundError{ID: id}
}

// Remove deletes a job by id. Removing a missing id is an error so
// typos surface instead of silently succeeding.
func (t *Tracker) Remove(id string) error {
	jobs, err := t.load()
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			jobs = append(jobs[:i], jobs[i+1:]...)
			return t.save(jobs)
		}
	}
	return &JobNotFoundError{ID: id}
}

func (t *Tracker) load() ([]Job, error) {
	raw, ok, err := t.store.GetRaw(store.StorageKey(t.namespace, store.KeyJobs))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Job{}, nil
	}
	var jobs []Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return []Job{}, nil
	}
	return jobs, nil
}

func (t *Tracker) save(jobs []Job) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return err
	}
	return t.store.SetRaw(store.StorageKey(t.namespace, store.KeyJobs), raw)
}
