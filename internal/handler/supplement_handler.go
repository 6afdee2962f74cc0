package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"gymclub/internal/errors"
	"gymclub/internal/model"
	"gymclub/internal/service"
)

// SupplementHandler handles supplement purchase endpoints.
type SupplementHandler struct {
	supplementService service.SupplementService
}

// NewSupplementHandler creates a new supplement handler.
func NewSupplementHandler(supplementService service.SupplementService) *SupplementHandler {
	return &SupplementHandler{supplementService: supplementService}
}

// PurchaseSupplementRequest represents a supplement purchase request.
type PurchaseSupplementRequest struct {
	ProductName string          `json:"productName" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
}

// PurchaseSupplementResponse represents a recorded supplement purchase.
type PurchaseSupplementResponse struct {
	Success  bool                      `json:"success"`
	Message  string                    `json:"message"`
	Purchase *model.SupplementPurchase `json:"purchase"`
}

// HistoryResponse represents a member's purchase history.
type HistoryResponse struct {
	Success   bool                       `json:"success"`
	Purchases []model.SupplementPurchase `json:"purchases"`
}

// Purchase godoc
// @Summary Record a supplement purchase
// @Tags supplements
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body PurchaseSupplementRequest true "Purchase data"
// @Success 201 {object} PurchaseSupplementResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /buy-protein/{id} [post]
func (h *SupplementHandler) Purchase(c echo.Context) error {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid member ID",
			Code:  "INVALID_UUID",
		})
	}

	var req PurchaseSupplementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	purchase, err := h.supplementService.Purchase(c.Request().Context(), memberID, req.ProductName, req.Price, req.Quantity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, PurchaseSupplementResponse{
		Success:  true,
		Message:  "supplement purchase recorded",
		Purchase: purchase,
	})
}

// History godoc
// @Summary List a member's supplement purchases in insertion order
// @Tags supplements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/{id}/purchases [get]
func (h *SupplementHandler) History(c echo.Context) error {
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

	purchases, err := h.supplementService.History(c.Request().Context(), memberID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, HistoryResponse{
		Success:   true,
		Purchases: purchases,
	})
}
