package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradeport/internal/domain/entity"
	"tradeport/internal/domain/repository"
	"tradeport/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
	ledger statusLedger
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
		ledger: newStatusLedger(client, "reviews", "Review"),
	}
}

// reviewDocID derives the document id from the (user, product, order) triple.
// Firestore has no secondary unique indexes, so the one-review-per-triple
// constraint rides on the document id: a second submission targets the same
// document and Create fails with AlreadyExists no matter how the two
// submissions are timed. The triple is hashed with a NUL separator so ids
// containing the separator character cannot make distinct triples collide.
func reviewDocID(userID, productID, orderID string) string {
	sum := sha256.Sum256([]byte(userID + "\x00" + productID + "\x00" + orderID))
	return hex.EncodeToString(sum[:])
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	review.ID = reviewDocID(review.UserID, review.ProductID, review.OrderID)

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := r.client.Collection("reviews").Doc(review.ID).Create(ctx, review)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("You have already reviewed this product for this order")
		}
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := r.client.Collection("reviews").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}

	return &review, nil
}

func (r *firestoreReviewRepository) SetStatus(ctx context.Context, adminID, id string, status entity.ReviewStatus) (*entity.Review, error) {
	if err := r.ledger.force(ctx, adminID, id, string(status), nil); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *firestoreReviewRepository) ListByProduct(ctx context.Context, productID string, status entity.ReviewStatus, limit, offset int) ([]*entity.Review, int64, error) {
	query := r.client.Collection("reviews").Query.Where("productId", "==", productID)
	if status != "" {
		query = query.Where("status", "==", string(status))
	}
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreReviewRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Review, int64, error) {
	query := r.client.Collection("reviews").Query.Where("userId", "==", userID)
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreReviewRepository) List(ctx context.Context, status entity.ReviewStatus, limit, offset int) ([]*entity.Review, int64, error) {
	query := r.client.Collection("reviews").Query
	if status != "" {
		query = query.Where("status", "==", string(status))
	}
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreReviewRepository) list(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Review, int64, error) {
	query = query.OrderBy("createdAt", firestore.Desc)

	// Get total count
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count reviews", err)
	}
	total := int64(len(allDocs))

	// Apply pagination
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var reviews []*entity.Review

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate reviews", err)
		}
		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, 0, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, total, nil
}
