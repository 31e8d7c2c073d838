package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradeport/internal/domain/entity"
	"tradeport/internal/domain/repository"
	"tradeport/pkg/errors"
)

// Profile progress documents are keyed by the seller's user id, which is how
// the one-record-per-seller constraint is enforced.
type firestoreProfileProgressRepository struct {
	client *firestore.Client
	ledger statusLedger
}

func NewFirestoreProfileProgressRepository(client *firestore.Client) repository.ProfileProgressRepository {
	return &firestoreProfileProgressRepository{
		client: client,
		ledger: newStatusLedger(client, "profile_progress", "Profile progress"),
	}
}

func (r *firestoreProfileProgressRepository) GetByUserID(ctx context.Context, userID string) (*entity.ProfileProgress, error) {
	doc, err := r.client.Collection("profile_progress").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile progress", err)
		}
		return nil, errors.Internal("Failed to get profile progress", err)
	}

	var progress entity.ProfileProgress
	if err := doc.DataTo(&progress); err != nil {
		return nil, errors.Internal("Failed to parse profile progress data", err)
	}

	return &progress, nil
}

func (r *firestoreProfileProgressRepository) UpsertStep(ctx context.Context, userID, stepID string, completedSteps []string) (*entity.ProfileProgress, error) {
	docRef := r.client.Collection("profile_progress").Doc(userID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return errors.Internal("Failed to read profile progress", err)
		}

		now := time.Now()

		if err != nil { // no record yet: first onboarding save
			progress := entity.ProfileProgress{
				UserID:         userID,
				CompletedSteps: mergeSteps(nil, completedSteps, stepID),
				CurrentStep:    stepID,
				Status:         entity.ProgressPendingCompletion,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			return tx.Set(docRef, progress)
		}

		var progress entity.ProfileProgress
		if err := doc.DataTo(&progress); err != nil {
			return errors.Internal("Failed to parse profile progress data", err)
		}

		// Completed steps only grow until approval; an approved profile is
		// frozen unless an admin re-opens it.
		if progress.Status == entity.ProgressApproved {
			return errors.InvalidTransition("Profile is already approved", nil)
		}

		progress.CompletedSteps = mergeSteps(progress.CompletedSteps, completedSteps, stepID)
		progress.CurrentStep = stepID
		progress.UpdatedAt = now

		return tx.Set(docRef, progress)
	})

	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return nil, err
		}
		return nil, errors.Internal("Failed to save profile progress", err)
	}

	return r.GetByUserID(ctx, userID)
}

// mergeSteps unions the known steps with the incoming ones, preserving first
// occurrence order. Completed steps only grow; re-submitting a step is a
// no-op.
func mergeSteps(existing, incoming []string, stepID string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming)+1)
	merged := make([]string, 0, len(existing)+len(incoming)+1)

	add := func(step string) {
		if step == "" || seen[step] {
			return
		}
		seen[step] = true
		merged = append(merged, step)
	}

	for _, step := range existing {
		add(step)
	}
	for _, step := range incoming {
		add(step)
	}
	add(stepID)

	return merged
}

func (r *firestoreProfileProgressRepository) Transition(ctx context.Context, userID string, expected []entity.ProgressStatus, next entity.ProgressStatus) (*entity.ProfileProgress, error) {
	expectedRaw := make([]string, 0, len(expected))
	for _, s := range expected {
		expectedRaw = append(expectedRaw, string(s))
	}

	// Ownership is implicit: the document id is the seller's user id.
	if err := r.ledger.transition(ctx, userID, expectedRaw, string(next), nil, nil); err != nil {
		return nil, err
	}

	return r.GetByUserID(ctx, userID)
}

func (r *firestoreProfileProgressRepository) SetStatus(ctx context.Context, adminID, userID string, status entity.ProgressStatus) (*entity.ProfileProgress, error) {
	if err := r.ledger.force(ctx, adminID, userID, string(status), nil); err != nil {
		return nil, err
	}

	return r.GetByUserID(ctx, userID)
}
