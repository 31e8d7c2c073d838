package repository

import (
	"context"

	"tradeport/internal/domain/entity"
)

type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.QuotationRequest) error
	GetByID(ctx context.Context, id string) (*entity.QuotationRequest, error)

	// Transition is the conditional status update used for every non-admin
	// mutation: it fails with NotFound when the record is absent, Forbidden
	// when ownerCheck rejects the record, and InvalidTransition when the
	// current status is not in expected (including losing a race to a
	// concurrent writer). The status check and the update are atomic.
	Transition(ctx context.Context, id string, expected []entity.QuotationStatus, next entity.QuotationStatus, fields map[string]interface{}, ownerCheck func(*entity.QuotationRequest) bool) (*entity.QuotationRequest, error)

	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.QuotationRequest, int64, error)
	ListBySeller(ctx context.Context, sellerID string, status entity.QuotationStatus, limit, offset int) ([]*entity.QuotationRequest, int64, error)
	List(ctx context.Context, status entity.QuotationStatus, limit, offset int) ([]*entity.QuotationRequest, int64, error)
	CountByStatus(ctx context.Context) (map[entity.QuotationStatus]int64, error)
}
