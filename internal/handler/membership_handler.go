package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gymclub/internal/errors"
	"gymclub/internal/model"
	"gymclub/internal/service"
)

// MembershipHandler handles the membership purchase endpoint.
type MembershipHandler struct {
	membershipService service.MembershipService
}

// NewMembershipHandler creates a new membership handler.
func NewMembershipHandler(membershipService service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// PurchaseMembershipRequest represents a membership purchase request.
type PurchaseMembershipRequest struct {
	Plan          string `json:"plan" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// PurchaseMembershipResponse represents a successful membership purchase.
type PurchaseMembershipResponse struct {
	Success        bool                  `json:"success"`
	Message        string                `json:"message"`
	PaymentDetails *model.PaymentDetails `json:"paymentDetails"`
}

// Purchase godoc
// @Summary Purchase a membership plan
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body PurchaseMembershipRequest true "Plan and payment method"
// @Success 200 {object} PurchaseMembershipResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /buy-membership/{id} [post]
func (h *MembershipHandler) Purchase(c echo.Context) error {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid member ID",
			Code:  "INVALID_UUID",
		})
	}

	if httpErr := requireTokenOwner(c, memberID); httpErr != nil {
		return httpErr
	}

	var req PurchaseMembershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	details, err := h.membershipService.Purchase(c.Request().Context(), memberID, model.Plan(req.Plan), req.PaymentMethod)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PurchaseMembershipResponse{
		Success:        true,
		Message:        "membership activated",
		PaymentDetails: details,
	})
}
