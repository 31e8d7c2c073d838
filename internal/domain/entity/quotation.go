package entity

import (
	"time"
)

type QuotationStatus string

const (
	QuotationPending   QuotationStatus = "pending"
	QuotationResponded QuotationStatus = "responded"
	QuotationAccepted  QuotationStatus = "accepted"
	QuotationRejected  QuotationStatus = "rejected"
)

// A seller gets exactly one counter-offer per request, so responded is not
// re-enterable from itself. accepted and rejected are terminal.
var quotationNext = map[QuotationStatus]map[QuotationStatus]bool{
	QuotationPending:   {QuotationResponded: true},
	QuotationResponded: {QuotationAccepted: true, QuotationRejected: true},
	QuotationAccepted:  {},
	QuotationRejected:  {},
}

func (s QuotationStatus) IsValid() bool {
	_, ok := quotationNext[s]
	return ok
}

func (s QuotationStatus) CanTransition(to QuotationStatus) bool {
	return quotationNext[s][to]
}

func (s QuotationStatus) IsTerminal() bool {
	return s.IsValid() && len(quotationNext[s]) == 0
}

// QuotationRequest is a buyer's request for a custom price on a product from
// a specific seller. Records are never deleted; resolved requests stay as an
// audit trail.
type QuotationRequest struct {
	ID                string          `json:"id" firestore:"id"`
	ProductID         string          `json:"productId" firestore:"productId"`
	ProductTitle      string          `json:"productTitle" firestore:"productTitle"`
	SellerID          string          `json:"sellerId" firestore:"sellerId"`
	UserID            string          `json:"userId,omitempty" firestore:"userId,omitempty"` // empty for guest requests
	CustomerName      string          `json:"customerName" firestore:"customerName"`
	CustomerEmail     string          `json:"customerEmail" firestore:"customerEmail"`
	CustomerPhone     string          `json:"customerPhone" firestore:"customerPhone"`
	RequestedPrice    float64         `json:"requestedPrice" firestore:"requestedPrice"`
	Message           string          `json:"message,omitempty" firestore:"message,omitempty"`
	Status            QuotationStatus `json:"status" firestore:"status"`
	SellerResponse    string          `json:"sellerResponse,omitempty" firestore:"sellerResponse,omitempty"`
	SellerQuotedPrice float64         `json:"sellerQuotedPrice,omitempty" firestore:"sellerQuotedPrice,omitempty"`
	RejectionReason   string          `json:"rejectionReason,omitempty" firestore:"rejectionReason,omitempty"`
	CreatedAt         time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt" firestore:"updatedAt"`
}
