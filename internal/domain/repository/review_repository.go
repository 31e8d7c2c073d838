package repository

import (
	"context"

	"tradeport/internal/domain/entity"
)

type ReviewRepository interface {
	// Create inserts a new review and fails with Conflict when a review for
	// the same (userId, productId, orderId) already exists, regardless of how
	// the two submissions are timed.
	Create(ctx context.Context, review *entity.Review) error

	GetByID(ctx context.Context, id string) (*entity.Review, error)

	// SetStatus is the privileged moderation update; it has no precondition
	// on the current status. Only admin paths may call it; adminID is
	// recorded in the audit log.
	SetStatus(ctx context.Context, adminID, id string, status entity.ReviewStatus) (*entity.Review, error)

	ListByProduct(ctx context.Context, productID string, status entity.ReviewStatus, limit, offset int) ([]*entity.Review, int64, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Review, int64, error)
	List(ctx context.Context, status entity.ReviewStatus, limit, offset int) ([]*entity.Review, int64, error)
}
