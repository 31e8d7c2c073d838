package entity

import (
	"time"
)

type ProgressStatus string

const (
	ProgressPendingCompletion ProgressStatus = "Pending Completion"
	ProgressReview            ProgressStatus = "Review"
	ProgressApproved          ProgressStatus = "Approved"
	ProgressReject            ProgressStatus = "Reject"
)

// progressNext describes the seller-driven transitions only. Admins use a
// separate privileged path that may move a profile between Review, Approved
// and Reject regardless of the current status.
var progressNext = map[ProgressStatus]map[ProgressStatus]bool{
	ProgressPendingCompletion: {ProgressReview: true},
	ProgressReview:            {},
	ProgressApproved:          {},
	ProgressReject:            {},
}

func (s ProgressStatus) IsValid() bool {
	_, ok := progressNext[s]
	return ok
}

func (s ProgressStatus) CanTransition(to ProgressStatus) bool {
	return progressNext[s][to]
}

// IsDecision reports whether the status is one an admin may set.
func (s ProgressStatus) IsDecision() bool {
	return s == ProgressApproved || s == ProgressReject || s == ProgressReview
}

// ProfileProgress tracks a seller's onboarding: which profile steps are done
// and where the admin review stands. One record per seller.
type ProfileProgress struct {
	UserID         string         `json:"userId" firestore:"userId"`
	CompletedSteps []string       `json:"completedSteps" firestore:"completedSteps"`
	CurrentStep    string         `json:"currentStep" firestore:"currentStep"`
	Status         ProgressStatus `json:"status" firestore:"status"`
	CreatedAt      time.Time      `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt" firestore:"updatedAt"`
}

func (p *ProfileProgress) HasStep(stepID string) bool {
	for _, s := range p.CompletedSteps {
		if s == stepID {
			return true
		}
	}
	return false
}
