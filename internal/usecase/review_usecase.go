package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"tradeport/internal/domain/entity"
	"tradeport/internal/domain/repository"
	"tradeport/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

type SubmitReviewInput struct {
	OrderID   string
	ProductID string
	Title     string
	Rating    int
	Review    string
	Verified  bool
}

// SubmitReview creates the buyer's review for a product within an order. The
// same (buyer, product, order) triple can be reviewed only once; a second
// submission fails with Conflict however the two are timed.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, userID string, input SubmitReviewInput) (*entity.Review, error) {
	if input.OrderID == "" {
		return nil, errors.BadRequest("Order ID is required", nil)
	}
	if input.ProductID == "" {
		return nil, errors.BadRequest("Product ID is required", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	// Length limits count characters, not bytes, so multibyte text is not
	// penalized. The validator tags on the request DTO count the same way.
	text := strings.TrimSpace(input.Review)
	if n := utf8.RuneCountInString(text); n < entity.ReviewTextMinLen || n > entity.ReviewTextMaxLen {
		return nil, errors.BadRequest("Review must be between 10 and 500 characters", nil)
	}

	review := &entity.Review{
		UserID:             userID,
		OrderID:            input.OrderID,
		ProductID:          input.ProductID,
		Title:              input.Title,
		Rating:             input.Rating,
		Review:             text,
		Status:             entity.ReviewStatusDefault,
		IsVerifiedPurchase: input.Verified,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Moderate applies an admin decision to a review. Moderation has no required
// predecessor state: approving an already-rejected review (or the reverse) is
// allowed, and the store layer audit-logs the change.
func (uc *ReviewUseCase) Moderate(ctx context.Context, adminID, reviewID string, status string) (*entity.Review, error) {
	admin, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil || !admin.IsAdmin() {
		return nil, errors.Forbidden("Admin privileges required", err)
	}

	decision := entity.ReviewStatus(strings.ToLower(status))
	if !decision.IsDecision() {
		return nil, errors.BadRequest("Status must be approved or rejected", nil)
	}

	return uc.reviewRepo.SetStatus(ctx, adminID, reviewID, decision)
}

// ProductReviewSummary aggregates the published reviews for a product.
type ProductReviewSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalCount    int64   `json:"totalCount"`
}

func (uc *ReviewUseCase) ListProductReviews(ctx context.Context, productID string, page, limit int) ([]*entity.Review, int64, *ProductReviewSummary, error) {
	if productID == "" {
		return nil, 0, nil, errors.BadRequest("Product ID is required", nil)
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	// Only published reviews are visible outside moderation.
	reviews, total, err := uc.reviewRepo.ListByProduct(ctx, productID, entity.ReviewApproved, limit, offset)
	if err != nil {
		return nil, 0, nil, err
	}

	all, _, err := uc.reviewRepo.ListByProduct(ctx, productID, entity.ReviewApproved, 0, 0)
	if err != nil {
		return nil, 0, nil, err
	}

	summary := &ProductReviewSummary{TotalCount: int64(len(all))}
	if len(all) > 0 {
		var sum int
		for _, r := range all {
			sum += r.Rating
		}
		summary.AverageRating = float64(sum) / float64(len(all))
	}

	return reviews, total, summary, nil
}

func (uc *ReviewUseCase) ListUserReviews(ctx context.Context, userID string, page, limit int) ([]*entity.Review, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.reviewRepo.ListByUser(ctx, userID, limit, offset)
}

func (uc *ReviewUseCase) AdminList(ctx context.Context, adminID, status string, page, limit int) ([]*entity.Review, int64, error) {
	admin, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil || !admin.IsAdmin() {
		return nil, 0, errors.Forbidden("Admin privileges required", err)
	}

	var statusFilter entity.ReviewStatus
	if status != "" {
		statusFilter = entity.ReviewStatus(strings.ToLower(status))
		if !statusFilter.IsValid() {
			return nil, 0, errors.BadRequest("Invalid status filter", nil)
		}
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.reviewRepo.List(ctx, statusFilter, limit, offset)
}
