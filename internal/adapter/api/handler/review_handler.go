package handler

import (
	"github.com/labstack/echo/v4"

	"tradeport/internal/usecase"
	"tradeport/pkg/errors"
	"tradeport/pkg/response"
	"tradeport/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type submitReviewRequest struct {
	OrderID            string `json:"orderId" validate:"required"`
	ProductID          string `json:"productId" validate:"required"`
	Title              string `json:"title,omitempty"`
	Rating             int    `json:"rating" validate:"required,min=1,max=5"`
	Review             string `json:"review" validate:"required,min=10,max=500"`
	IsVerifiedPurchase bool   `json:"isVerifiedPurchase,omitempty"`
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.SubmitReview(c.Request().Context(), userID, usecase.SubmitReviewInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Title:     req.Title,
		Rating:    req.Rating,
		Review:    req.Review,
		Verified:  req.IsVerifiedPurchase,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

type productReviewsPayload struct {
	Items   interface{}                   `json:"items"`
	Total   int64                         `json:"total"`
	Page    int                           `json:"page"`
	Summary *usecase.ProductReviewSummary `json:"summary"`
}

func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID := c.QueryParam("productId")
	pagination := utils.GetPaginationParams(c)

	reviews, total, summary, err := h.reviewUseCase.ListProductReviews(c.Request().Context(), productID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, productReviewsPayload{
		Items:   reviews,
		Total:   total,
		Page:    pagination.Page,
		Summary: summary,
	})
}

func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListUserReviews(c.Request().Context(), userID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) AdminListReviews(c echo.Context) error {
	adminID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.AdminList(c.Request().Context(), adminID, c.QueryParam("status"), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

type moderateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *ReviewHandler) ModerateReview(c echo.Context) error {
	var req moderateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("uid").(string)

	review, err := h.reviewUseCase.Moderate(c.Request().Context(), adminID, c.Param("reviewId"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}
