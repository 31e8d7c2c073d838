package usecase

import (
	"context"
	"regexp"
	"strings"

	"tradeport/internal/domain/entity"
	"tradeport/internal/domain/repository"
	"tradeport/pkg/errors"
)

type QuotationUseCase struct {
	quotationRepo repository.QuotationRepository
	userRepo      repository.UserRepository
}

func NewQuotationUseCase(
	quotationRepo repository.QuotationRepository,
	userRepo repository.UserRepository,
) *QuotationUseCase {
	return &QuotationUseCase{
		quotationRepo: quotationRepo,
		userRepo:      userRepo,
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CreateQuotationInput struct {
	ProductID      string
	ProductTitle   string
	SellerID       string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	RequestedPrice float64
	Message        string
}

// CreateQuotation opens a negotiation in pending state. userID may be empty:
// guests can request quotes, identified only by their contact fields.
func (uc *QuotationUseCase) CreateQuotation(ctx context.Context, userID string, input CreateQuotationInput) (*entity.QuotationRequest, error) {
	if input.ProductID == "" || input.ProductTitle == "" || input.SellerID == "" {
		return nil, errors.BadRequest("Missing required fields", nil)
	}
	if input.CustomerName == "" || input.CustomerEmail == "" || input.CustomerPhone == "" {
		return nil, errors.BadRequest("Missing required fields", nil)
	}
	if !emailPattern.MatchString(input.CustomerEmail) {
		return nil, errors.BadRequest("Invalid email format", nil)
	}
	if len(input.CustomerPhone) < 10 {
		return nil, errors.BadRequest("Invalid phone number", nil)
	}
	if input.RequestedPrice <= 0 {
		return nil, errors.BadRequest("Requested price must be greater than zero", nil)
	}

	quotation := &entity.QuotationRequest{
		ProductID:      input.ProductID,
		ProductTitle:   input.ProductTitle,
		SellerID:       input.SellerID,
		UserID:         userID,
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		CustomerPhone:  input.CustomerPhone,
		RequestedPrice: input.RequestedPrice,
		Message:        input.Message,
		Status:         entity.QuotationPending,
	}

	if err := uc.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	return quotation, nil
}

// SellerRespond records the seller's single counter-offer. Only the assigned
// seller may respond, and only while the request is still pending; a second
// respond on the same request fails with InvalidTransition.
func (uc *QuotationUseCase) SellerRespond(ctx context.Context, sellerID, quotationID string, quotedPrice float64, response string) (*entity.QuotationRequest, error) {
	if quotedPrice <= 0 {
		return nil, errors.BadRequest("Quoted price must be greater than zero", nil)
	}

	return uc.quotationRepo.Transition(ctx, quotationID,
		[]entity.QuotationStatus{entity.QuotationPending},
		entity.QuotationResponded,
		map[string]interface{}{
			"sellerQuotedPrice": quotedPrice,
			"sellerResponse":    response,
		},
		func(q *entity.QuotationRequest) bool {
			return q.SellerID == sellerID
		},
	)
}

// BuyerAccept closes the negotiation in the buyer's favor. Only the
// requesting buyer may accept, and only a responded request. Guest-created
// requests have no userId and therefore cannot be accepted through this path.
func (uc *QuotationUseCase) BuyerAccept(ctx context.Context, userID, quotationID string) (*entity.QuotationRequest, error) {
	return uc.quotationRepo.Transition(ctx, quotationID,
		[]entity.QuotationStatus{entity.QuotationResponded},
		entity.QuotationAccepted,
		nil,
		func(q *entity.QuotationRequest) bool {
			return q.UserID != "" && q.UserID == userID
		},
	)
}

func (uc *QuotationUseCase) BuyerReject(ctx context.Context, userID, quotationID, reason string) (*entity.QuotationRequest, error) {
	return uc.quotationRepo.Transition(ctx, quotationID,
		[]entity.QuotationStatus{entity.QuotationResponded},
		entity.QuotationRejected,
		map[string]interface{}{
			"rejectionReason": reason,
		},
		func(q *entity.QuotationRequest) bool {
			return q.UserID != "" && q.UserID == userID
		},
	)
}

func (uc *QuotationUseCase) ListForBuyer(ctx context.Context, userID string, page, limit int) ([]*entity.QuotationRequest, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.quotationRepo.ListByUser(ctx, userID, limit, offset)
}

func (uc *QuotationUseCase) ListForSeller(ctx context.Context, sellerID, status string, page, limit int) ([]*entity.QuotationRequest, int64, error) {
	statusFilter, err := parseQuotationStatus(status)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.quotationRepo.ListBySeller(ctx, sellerID, statusFilter, limit, offset)
}

// QuotationStats is the per-status breakdown shown on the admin dashboard.
type QuotationStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Responded int64 `json:"responded"`
	Accepted  int64 `json:"accepted"`
	Rejected  int64 `json:"rejected"`
}

func (uc *QuotationUseCase) AdminList(ctx context.Context, adminID, status string, page, limit int) ([]*entity.QuotationRequest, int64, error) {
	if err := uc.requireAdmin(ctx, adminID); err != nil {
		return nil, 0, err
	}

	statusFilter, err := parseQuotationStatus(status)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	return uc.quotationRepo.List(ctx, statusFilter, limit, offset)
}

func (uc *QuotationUseCase) AdminStats(ctx context.Context, adminID string) (*QuotationStats, error) {
	if err := uc.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	counts, err := uc.quotationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &QuotationStats{
		Pending:   counts[entity.QuotationPending],
		Responded: counts[entity.QuotationResponded],
		Accepted:  counts[entity.QuotationAccepted],
		Rejected:  counts[entity.QuotationRejected],
	}
	stats.Total = stats.Pending + stats.Responded + stats.Accepted + stats.Rejected

	return stats, nil
}

func (uc *QuotationUseCase) requireAdmin(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.Forbidden("Admin privileges required", err)
	}
	if !user.IsAdmin() {
		return errors.Forbidden("Admin privileges required", nil)
	}
	return nil
}

func parseQuotationStatus(status string) (entity.QuotationStatus, error) {
	if status == "" {
		return "", nil
	}
	s := entity.QuotationStatus(strings.ToLower(status))
	if !s.IsValid() {
		return "", errors.BadRequest("Invalid status filter", nil)
	}
	return s, nil
}
