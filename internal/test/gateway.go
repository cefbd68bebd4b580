package test

import (
	"context"

	"github.com/notemart/notemart/internal/adapter/razorpay"
)

// GatewayStub implements the payment gateway client contract. Requests are
// recorded so tests can assert the amount forwarded to the gateway.
type GatewayStub struct {
	CreateOrderFn func(context.Context, razorpay.OrderRequest) (*razorpay.OrderResponse, error)
	Requests      []razorpay.OrderRequest
}

// CreateOrder records the request and delegates or returns a default order.
func (s *GatewayStub) CreateOrder(ctx context.Context, req razorpay.OrderRequest) (*razorpay.OrderResponse, error) {
	s.Requests = append(s.Requests, req)
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &razorpay.OrderResponse{
		ID:       "order_stub",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}
