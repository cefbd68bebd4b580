package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/notemart/notemart/internal/adapter/razorpay"
	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/domain/repository"
)

// OrderUseCase drives the purchase lifecycle: intent creation against the
// payment gateway and signature-checked verification.
type OrderUseCase struct {
	orders    repository.OrderRepository
	notes     repository.NoteRepository
	gateway   razorpay.Client
	keyID     string
	keySecret string
	currency  string
	logger    *slog.Logger
}

// NewOrderUseCase creates order use case.
func NewOrderUseCase(
	orders repository.OrderRepository,
	notes repository.NoteRepository,
	gateway razorpay.Client,
	keyID, keySecret, currency string,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		notes:     notes,
		gateway:   gateway,
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
		logger:    logger,
	}
}

// CreatePurchaseIntent registers a gateway order for the requested notes and
// persists a pending local order. Nothing is persisted when the gateway call
// fails.
func (uc *OrderUseCase) CreatePurchaseIntent(ctx context.Context, userID int64, noteIDs []int64) (*model.PaymentIntent, *model.Order, error) {
	ids := dedupeIDs(noteIDs)
	if len(ids) == 0 {
		return nil, nil, domainErrors.Validation("at least one note is required")
	}

	notes, err := uc.notes.ListActiveByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(notes) != len(ids) {
		return nil, nil, domainErrors.NotFound("some notes were not found or are unavailable")
	}

	owned, err := uc.orders.CompletedNoteIDs(ctx, userID, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(owned) > 0 {
		return nil, nil, domainErrors.Conflict("you have already purchased one of these notes")
	}

	var total float64
	items := make([]model.OrderItem, 0, len(notes))
	for _, note := range notes {
		total += note.Price
		items = append(items, model.OrderItem{NoteID: note.ID, Price: note.Price, Title: note.Title})
	}

	gatewayOrder, err := uc.gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:   int64(math.Round(total * 100)),
		Currency: uc.currency,
		Receipt:  fmt.Sprintf("receipt_%d", time.Now().UnixNano()),
	})
	if err != nil {
		if errors.Is(err, razorpay.ErrNotConfigured) {
			return nil, nil, domainErrors.Gateway("payment gateway is not configured")
		}
		uc.logger.Error("gateway order creation failed", slog.String("error", err.Error()))
		return nil, nil, domainErrors.Gateway("failed to create payment order")
	}

	order, err := uc.orders.Create(ctx, &model.Order{
		UserID:         userID,
		Items:          items,
		TotalAmount:    total,
		Currency:       uc.currency,
		GatewayOrderID: gatewayOrder.ID,
		Status:         model.OrderStatusPending,
	})
	if err != nil {
		return nil, nil, err
	}

	intent := &model.PaymentIntent{
		GatewayOrderID: gatewayOrder.ID,
		Amount:         total,
		Currency:       uc.currency,
		Key:            uc.keyID,
	}
	return intent, order, nil
}

// VerifyPurchase checks the client-reported payment signature and completes
// the order. A bad signature fails the order; verification of an already
// completed order is an idempotent success.
func (uc *OrderUseCase) VerifyPurchase(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*model.Order, error) {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return nil, domainErrors.Validation("missing payment verification fields")
	}

	order, err := uc.orders.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("order not found")
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrForbidden
	}

	if !razorpay.VerifySignature(uc.keySecret, gatewayOrderID, paymentID, signature) {
		if failErr := uc.orders.MarkFailed(ctx, gatewayOrderID); failErr != nil {
			uc.logger.Error("failed to mark order failed",
				slog.String("gateway_order_id", gatewayOrderID),
				slog.String("error", failErr.Error()),
			)
		}
		return nil, domainErrors.ErrPaymentVerification
	}

	completed, err := uc.orders.MarkCompleted(ctx, gatewayOrderID, paymentID, signature)
	if err != nil {
		return nil, err
	}
	if completed.Status != model.OrderStatusCompleted {
		// The order had already reached failed before this verification.
		return nil, domainErrors.ErrPaymentVerification
	}

	uc.logger.Info("payment verified",
		slog.Int64("order_id", completed.ID),
		slog.String("gateway_order_id", gatewayOrderID),
	)
	return completed, nil
}

// Orders returns the caller's purchase history, newest first.
func (uc *OrderUseCase) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return uc.orders.ListByUser(ctx, userID)
}

// AllOrders returns every order with purchaser details.
func (uc *OrderUseCase) AllOrders(ctx context.Context) ([]model.OrderView, error) {
	return uc.orders.ListAll(ctx)
}

// Get returns a single order; non-admins can only read their own.
func (uc *OrderUseCase) Get(ctx context.Context, id, userID int64, role model.Role) (*model.OrderView, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID && role != model.RoleAdmin {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}
