package entity

import (
	"time"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// ReviewStatusDefault is the status assigned to newly submitted reviews.
// New reviews are published immediately; moderation can still demote them to
// rejected afterwards. Change this to ReviewPending to require moderation
// before publishing.
const ReviewStatusDefault = ReviewApproved

func (s ReviewStatus) IsValid() bool {
	return s == ReviewPending || s == ReviewApproved || s == ReviewRejected
}

// IsDecision reports whether the status is one a moderator may set.
func (s ReviewStatus) IsDecision() bool {
	return s == ReviewApproved || s == ReviewRejected
}

// Review text limits, counted in characters.
const (
	ReviewTextMinLen = 10
	ReviewTextMaxLen = 500
)

// Review is a buyer's product review tied to a specific order. A buyer may
// review a given product once per order; the same product bought again in a
// later order can be reviewed again.
type Review struct {
	ID                 string       `json:"id" firestore:"id"`
	UserID             string       `json:"userId" firestore:"userId"`
	OrderID            string       `json:"orderId" firestore:"orderId"`
	ProductID          string       `json:"productId" firestore:"productId"`
	Title              string       `json:"title" firestore:"title"`
	Rating             int          `json:"rating" firestore:"rating"`
	Review             string       `json:"review" firestore:"review"`
	Status             ReviewStatus `json:"status" firestore:"status"`
	IsVerifiedPurchase bool         `json:"isVerifiedPurchase" firestore:"isVerifiedPurchase"`
	CreatedAt          time.Time    `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt" firestore:"updatedAt"`
}
