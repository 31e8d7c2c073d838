package handler

import (
	"github.com/labstack/echo/v4"

	"tradeport/internal/domain/entity"
	"tradeport/internal/domain/repository"
	"tradeport/internal/infrastructure/firebase"
	"tradeport/pkg/errors"
	"tradeport/pkg/response"
)

// DevTokenHandler mints custom tokens for local development so the auth path
// can be exercised without a real sign-in flow. Only routed in development.
type DevTokenHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
	userRepo     repository.UserRepository
}

func NewDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, userRepo repository.UserRepository) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
		userRepo:     userRepo,
	}
}

func (h *DevTokenHandler) GenerateUserToken(c echo.Context) error {
	return h.generateToken(c, entity.RoleBuyer)
}

func (h *DevTokenHandler) GenerateSellerToken(c echo.Context) error {
	return h.generateToken(c, entity.RoleSeller)
}

func (h *DevTokenHandler) GenerateAdminToken(c echo.Context) error {
	return h.generateToken(c, entity.RoleAdmin)
}

func (h *DevTokenHandler) generateToken(c echo.Context, role string) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		return response.Error(c, errors.BadRequest("uid query parameter is required", nil))
	}

	ctx := c.Request().Context()

	// Make sure the user document exists with the requested role, so the
	// admin middleware and the usecase role checks see it.
	if _, err := h.userRepo.GetByID(ctx, uid); err != nil {
		user := &entity.User{ID: uid, Role: role}
		if err := h.userRepo.Create(ctx, user); err != nil {
			return response.Error(c, err)
		}
	}

	token, err := h.firebaseAuth.GenerateToken(ctx, uid)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to generate token", err))
	}

	return response.Success(c, map[string]string{
		"uid":   uid,
		"role":  role,
		"token": token,
	})
}
