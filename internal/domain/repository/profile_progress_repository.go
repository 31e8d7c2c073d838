package repository

import (
	"context"

	"tradeport/internal/domain/entity"
)

type ProfileProgressRepository interface {
	// GetByUserID returns NotFound when the seller has no progress record yet.
	GetByUserID(ctx context.Context, userID string) (*entity.ProfileProgress, error)

	// UpsertStep creates the record in Pending Completion on first save,
	// otherwise merges the step into completedSteps (set semantics) and
	// advances currentStep. Re-recording a known step only refreshes the
	// timestamp.
	UpsertStep(ctx context.Context, userID, stepID string, completedSteps []string) (*entity.ProfileProgress, error)

	// Transition is the precondition-checked status update for seller-driven
	// changes (Pending Completion -> Review).
	Transition(ctx context.Context, userID string, expected []entity.ProgressStatus, next entity.ProgressStatus) (*entity.ProfileProgress, error)

	// SetStatus is the privileged transition: it sets the status regardless
	// of the current one. Only admin paths may call it; adminID is recorded
	// in the audit log.
	SetStatus(ctx context.Context, adminID, userID string, status entity.ProgressStatus) (*entity.ProfileProgress, error)
}
