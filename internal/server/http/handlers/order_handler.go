package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/server/http/dto"
)

// OrderHandler manages checkout and order history endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders/create. It registers a gateway order for the
// requested notes and returns the payment intent the client needs to open
// the checkout widget.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("noteIds are required"))
		return
	}

	intent, order, err := h.facade.CreatePurchaseIntent(c.Request.Context(), CurrentUserID(c), req.NoteIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("order created", gin.H{
		"payment": dto.FromPaymentIntent(intent),
		"order":   dto.FromOrder(order),
	}))
}

// Verify handles POST /api/orders/verify. Re-verifying an already completed
// order succeeds without side effects.
func (h *OrderHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("missing payment verification fields"))
		return
	}

	order, err := h.facade.VerifyPurchase(c.Request.Context(), CurrentUserID(c),
		req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("payment verified", dto.FromOrder(order)))
}

// My handles GET /api/orders/my-orders.
func (h *OrderHandler) My(c *gin.Context) {
	orders, err := h.facade.UserOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(len(orders), dto.FromOrders(orders)))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.GetOrder(c.Request.Context(), id, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromOrderView(order)))
}

// List handles GET /api/orders (admin).
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(len(orders), dto.FromOrderViews(orders)))
}
