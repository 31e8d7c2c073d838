package handler

import (
	"github.com/labstack/echo/v4"

	"tradeport/internal/usecase"
	"tradeport/pkg/errors"
	"tradeport/pkg/response"
)

type OnboardingHandler struct {
	onboardingUseCase *usecase.OnboardingUseCase
}

func NewOnboardingHandler(onboardingUseCase *usecase.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUseCase: onboardingUseCase,
	}
}

type recordStepRequest struct {
	StepID         string   `json:"stepId" validate:"required"`
	CompletedSteps []string `json:"completedSteps,omitempty"`
}

func (h *OnboardingHandler) RecordStep(c echo.Context) error {
	var req recordStepRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	progress, err := h.onboardingUseCase.RecordStep(c.Request().Context(), userID, req.StepID, req.CompletedSteps)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, progress)
}

func (h *OnboardingHandler) SubmitForReview(c echo.Context) error {
	userID := c.Get("uid").(string)

	progress, err := h.onboardingUseCase.SubmitForReview(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, progress)
}

func (h *OnboardingHandler) GetStatus(c echo.Context) error {
	userID := c.Get("uid").(string)

	progress, err := h.onboardingUseCase.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, progress)
}

type setSellerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Reject Review"`
}

func (h *OnboardingHandler) AdminSetSellerStatus(c echo.Context) error {
	var req setSellerStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("uid").(string)

	progress, err := h.onboardingUseCase.AdminSetStatus(c.Request().Context(), adminID, c.Param("userId"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, progress)
}
