package usecase

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/domain/repository"
)

// StatsUseCase aggregates store counters for the admin dashboard.
type StatsUseCase struct {
	users    repository.UserRepository
	notes    repository.NoteRepository
	orders   repository.OrderRepository
	contacts repository.ContactRepository
}

// NewStatsUseCase creates stats use case.
func NewStatsUseCase(
	users repository.UserRepository,
	notes repository.NoteRepository,
	orders repository.OrderRepository,
	contacts repository.ContactRepository,
) *StatsUseCase {
	return &StatsUseCase{users: users, notes: notes, orders: orders, contacts: contacts}
}

// Collect gathers user, note, order and contact counters in one snapshot.
func (uc *StatsUseCase) Collect(ctx context.Context) (*model.StoreStats, error) {
	users, err := uc.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := uc.notes.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	orderStats, err := uc.orders.Stats(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := uc.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StoreStats{
		TotalUsers:      users,
		TotalNotes:      notes,
		TotalOrders:     orderStats.Total,
		CompletedOrders: orderStats.Completed,
		PendingOrders:   orderStats.Pending,
		TotalRevenue:    orderStats.Revenue,
		TotalContacts:   contacts,
	}, nil
}
