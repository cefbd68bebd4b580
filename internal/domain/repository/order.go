package repository

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	// Create persists a pending order together with its line items.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.OrderView, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.OrderView, error)
	// CompletedNoteIDs returns the subset of noteIDs the user already holds a
	// completed order for.
	CompletedNoteIDs(ctx context.Context, userID int64, noteIDs []int64) ([]int64, error)
	HasCompletedWithNote(ctx context.Context, userID, noteID int64) (bool, error)
	// MarkCompleted transitions the order to completed only while it is
	// pending, then returns the order in its current state. Calling it again
	// for an already completed order is a no-op returning that order.
	MarkCompleted(ctx context.Context, gatewayOrderID, paymentID, signature string) (*model.Order, error)
	// MarkFailed transitions a pending order to failed. Terminal orders and
	// unknown gateway ids are left untouched without error.
	MarkFailed(ctx context.Context, gatewayOrderID string) error
	Stats(ctx context.Context) (*model.OrderStats, error)
}
