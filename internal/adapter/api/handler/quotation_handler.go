package handler

import (
	"github.com/labstack/echo/v4"

	"tradeport/internal/usecase"
	"tradeport/pkg/errors"
	"tradeport/pkg/response"
	"tradeport/pkg/utils"
)

type QuotationHandler struct {
	quotationUseCase *usecase.QuotationUseCase
}

func NewQuotationHandler(quotationUseCase *usecase.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{
		quotationUseCase: quotationUseCase,
	}
}

type createQuotationRequest struct {
	ProductID      string  `json:"productId" validate:"required"`
	ProductTitle   string  `json:"productTitle" validate:"required"`
	SellerID       string  `json:"sellerId" validate:"required"`
	CustomerName   string  `json:"customerName" validate:"required"`
	CustomerEmail  string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone  string  `json:"customerPhone" validate:"required,min=10"`
	RequestedPrice float64 `json:"requestedPrice" validate:"required,gt=0"`
	Message        string  `json:"message,omitempty"`
}

func (h *QuotationHandler) CreateQuotation(c echo.Context) error {
	var req createQuotationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// Guests may request quotes; uid is empty when no actor is resolved.
	userID, _ := c.Get("uid").(string)

	quotation, err := h.quotationUseCase.CreateQuotation(c.Request().Context(), userID, usecase.CreateQuotationInput{
		ProductID:      req.ProductID,
		ProductTitle:   req.ProductTitle,
		SellerID:       req.SellerID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		RequestedPrice: req.RequestedPrice,
		Message:        req.Message,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, quotation)
}

type respondQuotationRequest struct {
	QuotedPrice float64 `json:"quotedPrice" validate:"required,gt=0"`
	Response    string  `json:"response,omitempty"`
}

func (h *QuotationHandler) SellerRespond(c echo.Context) error {
	var req respondQuotationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	quotation, err := h.quotationUseCase.SellerRespond(c.Request().Context(), sellerID, c.Param("id"), req.QuotedPrice, req.Response)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quotation)
}

func (h *QuotationHandler) BuyerAccept(c echo.Context) error {
	userID := c.Get("uid").(string)

	quotation, err := h.quotationUseCase.BuyerAccept(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quotation)
}

type rejectQuotationRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (h *QuotationHandler) BuyerReject(c echo.Context) error {
	var req rejectQuotationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	userID := c.Get("uid").(string)

	quotation, err := h.quotationUseCase.BuyerReject(c.Request().Context(), userID, c.Param("id"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quotation)
}

func (h *QuotationHandler) ListMyQuotations(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	quotations, total, err := h.quotationUseCase.ListForBuyer(c.Request().Context(), userID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, quotations, total, pagination.Page, pagination.PageSize)
}

func (h *QuotationHandler) ListSellerQuotations(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	quotations, total, err := h.quotationUseCase.ListForSeller(c.Request().Context(), sellerID, c.QueryParam("status"), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, quotations, total, pagination.Page, pagination.PageSize)
}

func (h *QuotationHandler) AdminListQuotations(c echo.Context) error {
	adminID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	quotations, total, err := h.quotationUseCase.AdminList(c.Request().Context(), adminID, c.QueryParam("status"), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, quotations, total, pagination.Page, pagination.PageSize)
}

func (h *QuotationHandler) AdminQuotationStats(c echo.Context) error {
	adminID := c.Get("uid").(string)

	stats, err := h.quotationUseCase.AdminStats(c.Request().Context(), adminID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
