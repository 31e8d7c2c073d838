package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"tradeport/internal/domain/entity"
	"tradeport/pkg/errors"
)

// In-memory repositories for the usecase tests. Transition mirrors the store
// contract: owner check, then status precondition, then write, all under one
// lock so concurrent callers serialize the same way the real conditional
// update does.

type fakeQuotationRepo struct {
	mu    sync.Mutex
	items map[string]*entity.QuotationRequest
	seq   int
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{items: make(map[string]*entity.QuotationRequest)}
}

func (f *fakeQuotationRepo) Create(ctx context.Context, q *entity.QuotationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if q.ID == "" {
		f.seq++
		q.ID = fmt.Sprintf("q-%d", f.seq)
	}
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	cp := *q
	f.items[q.ID] = &cp
	return nil
}

func (f *fakeQuotationRepo) GetByID(ctx context.Context, id string) (*entity.QuotationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q, ok := f.items[id]
	if !ok {
		return nil, errors.NotFound("Quotation request", nil)
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuotationRepo) Transition(ctx context.Context, id string, expected []entity.QuotationStatus, next entity.QuotationStatus, fields map[string]interface{}, ownerCheck func(*entity.QuotationRequest) bool) (*entity.QuotationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q, ok := f.items[id]
	if !ok {
		return nil, errors.NotFound("Quotation request", nil)
	}

	if ownerCheck != nil && !ownerCheck(q) {
		return nil, errors.Forbidden("You are not allowed to modify this quotation request", nil)
	}

	matched := false
	for _, want := range expected {
		if q.Status == want {
			matched = true
			break
		}
	}
	if !matched {
		return nil, errors.InvalidTransition(
			fmt.Sprintf("Quotation request cannot move from %q to %q", q.Status, next), nil)
	}

	cp := *q
	cp.Status = next
	cp.UpdatedAt = time.Now()
	for path, value := range fields {
		switch path {
		case "sellerQuotedPrice":
			cp.SellerQuotedPrice = value.(float64)
		case "sellerResponse":
			cp.SellerResponse = value.(string)
		case "rejectionReason":
			cp.RejectionReason = value.(string)
		}
	}

	f.items[id] = &cp
	out := cp
	return &out, nil
}

func (f *fakeQuotationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.QuotationRequest, int64, error) {
	return f.listWhere(func(q *entity.QuotationRequest) bool { return q.UserID == userID }, limit, offset)
}

func (f *fakeQuotationRepo) ListBySeller(ctx context.Context, sellerID string, status entity.QuotationStatus, limit, offset int) ([]*entity.QuotationRequest, int64, error) {
	return f.listWhere(func(q *entity.QuotationRequest) bool {
		return q.SellerID == sellerID && (status == "" || q.Status == status)
	}, limit, offset)
}

func (f *fakeQuotationRepo) List(ctx context.Context, status entity.QuotationStatus, limit, offset int) ([]*entity.QuotationRequest, int64, error) {
	return f.listWhere(func(q *entity.QuotationRequest) bool {
		return status == "" || q.Status == status
	}, limit, offset)
}

func (f *fakeQuotationRepo) listWhere(match func(*entity.QuotationRequest) bool, limit, offset int) ([]*entity.QuotationRequest, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.QuotationRequest
	for _, q := range f.items {
		if match(q) {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeQuotationRepo) CountByStatus(ctx context.Context) (map[entity.QuotationStatus]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[entity.QuotationStatus]int64)
	for _, q := range f.items {
		counts[q.Status]++
	}
	return counts, nil
}

type fakeProgressRepo struct {
	mu    sync.Mutex
	items map[string]*entity.ProfileProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{items: make(map[string]*entity.ProfileProgress)}
}

func (f *fakeProgressRepo) GetByUserID(ctx context.Context, userID string) (*entity.ProfileProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.items[userID]
	if !ok {
		return nil, errors.NotFound("Profile progress", nil)
	}
	cp := *p
	cp.CompletedSteps = append([]string(nil), p.CompletedSteps...)
	return &cp, nil
}

func (f *fakeProgressRepo) UpsertStep(ctx context.Context, userID, stepID string, completedSteps []string) (*entity.ProfileProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()

	p, ok := f.items[userID]
	if !ok {
		created := &entity.ProfileProgress{
			UserID:         userID,
			CompletedSteps: mergeFakeSteps(nil, completedSteps, stepID),
			CurrentStep:    stepID,
			Status:         entity.ProgressPendingCompletion,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		f.items[userID] = created
		cp := *created
		return &cp, nil
	}

	if p.Status == entity.ProgressApproved {
		return nil, errors.InvalidTransition("Profile is already approved", nil)
	}

	p.CompletedSteps = mergeFakeSteps(p.CompletedSteps, completedSteps, stepID)
	p.CurrentStep = stepID
	p.UpdatedAt = now

	cp := *p
	cp.CompletedSteps = append([]string(nil), p.CompletedSteps...)
	return &cp, nil
}

func mergeFakeSteps(existing, incoming []string, stepID string) []string {
	seen := make(map[string]bool)
	var merged []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		merged = append(merged, s)
	}
	for _, s := range existing {
		add(s)
	}
	for _, s := range incoming {
		add(s)
	}
	add(stepID)
	return merged
}

func (f *fakeProgressRepo) Transition(ctx context.Context, userID string, expected []entity.ProgressStatus, next entity.ProgressStatus) (*entity.ProfileProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.items[userID]
	if !ok {
		return nil, errors.NotFound("Profile progress", nil)
	}

	matched := false
	for _, want := range expected {
		if p.Status == want {
			matched = true
			break
		}
	}
	if !matched {
		return nil, errors.InvalidTransition(
			fmt.Sprintf("Profile progress cannot move from %q to %q", p.Status, next), nil)
	}

	p.Status = next
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) SetStatus(ctx context.Context, adminID, userID string, status entity.ProgressStatus) (*entity.ProfileProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.items[userID]
	if !ok {
		return nil, errors.NotFound("Profile progress", nil)
	}

	p.Status = status
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

type fakeReviewRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{items: make(map[string]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := review.UserID + "\x00" + review.ProductID + "\x00" + review.OrderID
	if _, exists := f.items[id]; exists {
		return errors.Conflict("You have already reviewed this product for this order")
	}

	review.ID = id
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	cp := *review
	f.items[id] = &cp
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.items[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) SetStatus(ctx context.Context, adminID, id string, status entity.ReviewStatus) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.items[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}

	r.Status = status
	r.UpdatedAt = time.Now()
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID string, status entity.ReviewStatus, limit, offset int) ([]*entity.Review, int64, error) {
	return f.listWhere(func(r *entity.Review) bool {
		return r.ProductID == productID && (status == "" || r.Status == status)
	}, limit, offset)
}

func (f *fakeReviewRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Review, int64, error) {
	return f.listWhere(func(r *entity.Review) bool { return r.UserID == userID }, limit, offset)
}

func (f *fakeReviewRepo) List(ctx context.Context, status entity.ReviewStatus, limit, offset int) ([]*entity.Review, int64, error) {
	return f.listWhere(func(r *entity.Review) bool { return status == "" || r.Status == status }, limit, offset)
}

func (f *fakeReviewRepo) listWhere(match func(*entity.Review) bool, limit, offset int) ([]*entity.Review, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Review
	for _, r := range f.items {
		if match(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{items: make(map[string]*entity.User)}
	for _, u := range users {
		f.items[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.items[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[user.ID] = user
	return nil
}
