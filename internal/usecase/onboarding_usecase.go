package usecase

import (
	"context"

	"tradeport/internal/domain/entity"
	"tradeport/internal/domain/repository"
	"tradeport/pkg/errors"
)

type OnboardingUseCase struct {
	progressRepo repository.ProfileProgressRepository
	userRepo     repository.UserRepository
}

func NewOnboardingUseCase(
	progressRepo repository.ProfileProgressRepository,
	userRepo repository.UserRepository,
) *OnboardingUseCase {
	return &OnboardingUseCase{
		progressRepo: progressRepo,
		userRepo:     userRepo,
	}
}

// RecordStep saves an onboarding step for the seller, creating the progress
// record on first save. Re-recording a step the seller already completed
// only refreshes the timestamp.
func (uc *OnboardingUseCase) RecordStep(ctx context.Context, userID, stepID string, completedSteps []string) (*entity.ProfileProgress, error) {
	if stepID == "" {
		return nil, errors.BadRequest("Step ID is required", nil)
	}

	return uc.progressRepo.UpsertStep(ctx, userID, stepID, completedSteps)
}

// SubmitForReview hands the profile to the admins. Only a profile still in
// Pending Completion can be submitted; resubmission after a decision goes
// through an admin re-opening the review.
func (uc *OnboardingUseCase) SubmitForReview(ctx context.Context, userID string) (*entity.ProfileProgress, error) {
	return uc.progressRepo.Transition(ctx, userID,
		[]entity.ProgressStatus{entity.ProgressPendingCompletion},
		entity.ProgressReview,
	)
}

// AdminSetStatus applies an admin decision. Unlike the seller-driven
// transitions it accepts any current status, so admins can re-open a closed
// decision; the call is audit-logged in the store layer.
func (uc *OnboardingUseCase) AdminSetStatus(ctx context.Context, adminID, userID string, status string) (*entity.ProfileProgress, error) {
	admin, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil || !admin.IsAdmin() {
		return nil, errors.Forbidden("Admin privileges required", err)
	}

	decision := entity.ProgressStatus(status)
	if !decision.IsDecision() {
		return nil, errors.BadRequest("Status must be Approved, Reject, or Review", nil)
	}

	return uc.progressRepo.SetStatus(ctx, adminID, userID, decision)
}

// GetStatus returns the seller's progress, or a Pending Completion
// placeholder when the seller has not saved any step yet. Callers treat the
// two identically.
func (uc *OnboardingUseCase) GetStatus(ctx context.Context, userID string) (*entity.ProfileProgress, error) {
	progress, err := uc.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &entity.ProfileProgress{
				UserID:         userID,
				CompletedSteps: []string{},
				Status:         entity.ProgressPendingCompletion,
			}, nil
		}
		return nil, err
	}

	return progress, nil
}
