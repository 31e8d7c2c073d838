package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradeport/internal/domain/entity"
	"tradeport/internal/domain/repository"
	"tradeport/pkg/errors"

	"github.com/google/uuid"
)

type firestoreQuotationRepository struct {
	client *firestore.Client
	ledger statusLedger
}

func NewFirestoreQuotationRepository(client *firestore.Client) repository.QuotationRepository {
	return &firestoreQuotationRepository{
		client: client,
		ledger: newStatusLedger(client, "quotation_requests", "Quotation request"),
	}
}

func (r *firestoreQuotationRepository) Create(ctx context.Context, quotation *entity.QuotationRequest) error {
	if quotation.ID == "" {
		quotation.ID = uuid.New().String()
	}

	now := time.Now()
	quotation.CreatedAt = now
	quotation.UpdatedAt = now

	_, err := r.client.Collection("quotation_requests").Doc(quotation.ID).Set(ctx, quotation)
	if err != nil {
		return errors.Internal("Failed to create quotation request", err)
	}

	return nil
}

func (r *firestoreQuotationRepository) GetByID(ctx context.Context, id string) (*entity.QuotationRequest, error) {
	doc, err := r.client.Collection("quotation_requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Quotation request", err)
		}
		return nil, errors.Internal("Failed to get quotation request", err)
	}

	var quotation entity.QuotationRequest
	if err := doc.DataTo(&quotation); err != nil {
		return nil, errors.Internal("Failed to parse quotation request data", err)
	}

	return &quotation, nil
}

func (r *firestoreQuotationRepository) Transition(ctx context.Context, id string, expected []entity.QuotationStatus, next entity.QuotationStatus, fields map[string]interface{}, ownerCheck func(*entity.QuotationRequest) bool) (*entity.QuotationRequest, error) {
	expectedRaw := make([]string, 0, len(expected))
	for _, s := range expected {
		expectedRaw = append(expectedRaw, string(s))
	}

	err := r.ledger.transition(ctx, id, expectedRaw, string(next), fields, func(doc *firestore.DocumentSnapshot) error {
		if ownerCheck == nil {
			return nil
		}
		var quotation entity.QuotationRequest
		if err := doc.DataTo(&quotation); err != nil {
			return errors.Internal("Failed to parse quotation request data", err)
		}
		if !ownerCheck(&quotation) {
			return errors.Forbidden("You are not allowed to modify this quotation request", nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *firestoreQuotationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.QuotationRequest, int64, error) {
	query := r.client.Collection("quotation_requests").Query.Where("userId", "==", userID)
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreQuotationRepository) ListBySeller(ctx context.Context, sellerID string, status entity.QuotationStatus, limit, offset int) ([]*entity.QuotationRequest, int64, error) {
	query := r.client.Collection("quotation_requests").Query.Where("sellerId", "==", sellerID)
	if status != "" {
		query = query.Where("status", "==", string(status))
	}
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreQuotationRepository) List(ctx context.Context, status entity.QuotationStatus, limit, offset int) ([]*entity.QuotationRequest, int64, error) {
	query := r.client.Collection("quotation_requests").Query
	if status != "" {
		query = query.Where("status", "==", string(status))
	}
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreQuotationRepository) list(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.QuotationRequest, int64, error) {
	query = query.OrderBy("createdAt", firestore.Desc)

	// Get total count
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count quotation requests", err)
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
	var quotations []*entity.QuotationRequest

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate quotation requests", err)
		}
		var quotation entity.QuotationRequest
		if err := doc.DataTo(&quotation); err != nil {
			return nil, 0, errors.Internal("Failed to parse quotation request data", err)
		}
		quotations = append(quotations, &quotation)
	}

	return quotations, total, nil
}

func (r *firestoreQuotationRepository) CountByStatus(ctx context.Context) (map[entity.QuotationStatus]int64, error) {
	iter := r.client.Collection("quotation_requests").Documents(ctx)
	defer iter.Stop()

	counts := make(map[entity.QuotationStatus]int64)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to count quotation requests", err)
		}
		raw, err := doc.DataAt("status")
		if err != nil {
			continue
		}
		if s, ok := raw.(string); ok {
			counts[entity.QuotationStatus(s)]++
		}
	}

	return counts, nil
}
