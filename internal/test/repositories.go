package test

import (
	"context"
	"time"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
)

// UserRepoStub provides controllable user persistence for tests.
type UserRepoStub struct {
	CreateFn     func(context.Context, string, string, string, model.Role) (*model.User, error)
	GetByEmailFn func(context.Context, string) (*model.User, error)
	GetByIDFn    func(context.Context, int64) (*model.User, error)
	SetRoleFn    func(context.Context, int64, model.Role) error
	CountFn      func(context.Context) (int64, error)
}

func (s UserRepoStub) Create(ctx context.Context, name, email, hash string, role model.Role) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, email, hash, role)
	}
	return &model.User{ID: 1, Name: name, Email: email, PasswordHash: hash, Role: role, CreatedAt: time.Unix(0, 0)}, nil
}

func (s UserRepoStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.GetByEmailFn != nil {
		return s.GetByEmailFn(ctx, email)
	}
	return nil, domainErrors.ErrNotFound
}

func (s UserRepoStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.RoleUser}, nil
}

func (s UserRepoStub) SetRole(ctx context.Context, id int64, role model.Role) error {
	if s.SetRoleFn != nil {
		return s.SetRoleFn(ctx, id, role)
	}
	return nil
}

func (s UserRepoStub) Count(ctx context.Context) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	return 0, nil
}

// BoardRepoStub provides controllable board persistence for tests.
type BoardRepoStub struct {
	CreateFn     func(context.Context, string, string) (*model.Board, error)
	UpdateFn     func(context.Context, int64, string, string) (*model.Board, error)
	DeactivateFn func(context.Context, int64) error
	GetByIDFn    func(context.Context, int64) (*model.Board, error)
	ListFn       func(context.Context) ([]model.Board, error)
}

func (s BoardRepoStub) Create(ctx context.Context, name, description string) (*model.Board, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, description)
	}
	return &model.Board{ID: 1, Name: name, Description: description, IsActive: true}, nil
}

func (s BoardRepoStub) Update(ctx context.Context, id int64, name, description string) (*model.Board, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name, description)
	}
	return &model.Board{ID: id, Name: name, Description: description, IsActive: true}, nil
}

func (s BoardRepoStub) Deactivate(ctx context.Context, id int64) error {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	return nil
}

func (s BoardRepoStub) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Board{ID: id, IsActive: true}, nil
}

func (s BoardRepoStub) List(ctx context.Context) ([]model.Board, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// StreamRepoStub provides controllable stream persistence for tests.
type StreamRepoStub struct {
	CreateFn     func(context.Context, int64, string) (*model.Stream, error)
	UpdateFn     func(context.Context, int64, string) (*model.Stream, error)
	DeactivateFn func(context.Context, int64) error
	GetByIDFn    func(context.Context, int64) (*model.Stream, error)
	ListFn       func(context.Context, int64) ([]model.Stream, error)
}

func (s StreamRepoStub) Create(ctx context.Context, boardID int64, name string) (*model.Stream, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, boardID, name)
	}
	return &model.Stream{ID: 1, BoardID: boardID, Name: name, IsActive: true}, nil
}

func (s StreamRepoStub) Update(ctx context.Context, id int64, name string) (*model.Stream, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name)
	}
	return &model.Stream{ID: id, Name: name, IsActive: true}, nil
}

func (s StreamRepoStub) Deactivate(ctx context.Context, id int64) error {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	return nil
}

func (s StreamRepoStub) GetByID(ctx context.Context, id int64) (*model.Stream, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Stream{ID: id, IsActive: true}, nil
}

func (s StreamRepoStub) List(ctx context.Context, boardID int64) ([]model.Stream, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, boardID)
	}
	return nil, nil
}

// SubjectRepoStub provides controllable subject persistence for tests.
type SubjectRepoStub struct {
	CreateFn     func(context.Context, int64, string) (*model.Subject, error)
	UpdateFn     func(context.Context, int64, string) (*model.Subject, error)
	DeactivateFn func(context.Context, int64) error
	GetByIDFn    func(context.Context, int64) (*model.Subject, error)
	ListFn       func(context.Context, int64) ([]model.Subject, error)
}

func (s SubjectRepoStub) Create(ctx context.Context, streamID int64, name string) (*model.Subject, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, streamID, name)
	}
	return &model.Subject{ID: 1, StreamID: streamID, Name: name, IsActive: true}, nil
}

func (s SubjectRepoStub) Update(ctx context.Context, id int64, name string) (*model.Subject, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name)
	}
	return &model.Subject{ID: id, Name: name, IsActive: true}, nil
}

func (s SubjectRepoStub) Deactivate(ctx context.Context, id int64) error {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	return nil
}

func (s SubjectRepoStub) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Subject{ID: id, IsActive: true}, nil
}

func (s SubjectRepoStub) List(ctx context.Context, streamID int64) ([]model.Subject, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, streamID)
	}
	return nil, nil
}

// NoteRepoStub provides controllable note persistence for tests.
type NoteRepoStub struct {
	CreateFn          func(context.Context, *model.Note) (*model.Note, error)
	UpdateFn          func(context.Context, *model.Note) (*model.Note, error)
	DeactivateFn      func(context.Context, int64) error
	GetByIDFn         func(context.Context, int64) (*model.Note, error)
	GetViewFn         func(context.Context, int64) (*model.NoteView, error)
	ListActiveByIDsFn func(context.Context, []int64) ([]model.Note, error)
	ListViewsFn       func(context.Context, model.NoteFilter) ([]model.NoteView, error)
	CountActiveFn     func(context.Context) (int64, error)
}

func (s NoteRepoStub) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, note)
	}
	created := *note
	created.ID = 1
	created.IsActive = true
	return &created, nil
}

func (s NoteRepoStub) Update(ctx context.Context, note *model.Note) (*model.Note, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, note)
	}
	return note, nil
}

func (s NoteRepoStub) Deactivate(ctx context.Context, id int64) error {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	return nil
}

func (s NoteRepoStub) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Note{ID: id, Title: "note", IsActive: true}, nil
}

func (s NoteRepoStub) GetView(ctx context.Context, id int64) (*model.NoteView, error) {
	if s.GetViewFn != nil {
		return s.GetViewFn(ctx, id)
	}
	return &model.NoteView{Note: model.Note{ID: id, Title: "note", IsActive: true}}, nil
}

func (s NoteRepoStub) ListActiveByIDs(ctx context.Context, ids []int64) ([]model.Note, error) {
	if s.ListActiveByIDsFn != nil {
		return s.ListActiveByIDsFn(ctx, ids)
	}
	notes := make([]model.Note, 0, len(ids))
	for _, id := range ids {
		notes = append(notes, model.Note{ID: id, Title: "note", Price: 100, IsActive: true})
	}
	return notes, nil
}

func (s NoteRepoStub) ListViews(ctx context.Context, filter model.NoteFilter) ([]model.NoteView, error) {
	if s.ListViewsFn != nil {
		return s.ListViewsFn(ctx, filter)
	}
	return nil, nil
}

func (s NoteRepoStub) CountActive(ctx context.Context) (int64, error) {
	if s.CountActiveFn != nil {
		return s.CountActiveFn(ctx)
	}
	return 0, nil
}

// OrderRepoStub provides controllable order persistence for tests.
type OrderRepoStub struct {
	CreateFn               func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn              func(context.Context, int64) (*model.OrderView, error)
	GetByGatewayOrderIDFn  func(context.Context, string) (*model.Order, error)
	ListByUserFn           func(context.Context, int64) ([]model.Order, error)
	ListAllFn              func(context.Context) ([]model.OrderView, error)
	CompletedNoteIDsFn     func(context.Context, int64, []int64) ([]int64, error)
	HasCompletedWithNoteFn func(context.Context, int64, int64) (bool, error)
	MarkCompletedFn        func(context.Context, string, string, string) (*model.Order, error)
	MarkFailedFn           func(context.Context, string) error
	StatsFn                func(context.Context) (*model.OrderStats, error)
}

func (s OrderRepoStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = 1
	return &created, nil
}

func (s OrderRepoStub) GetByID(ctx context.Context, id int64) (*model.OrderView, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.OrderView{Order: model.Order{ID: id, UserID: 1, Status: model.OrderStatusPending}}, nil
}

func (s OrderRepoStub) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error) {
	if s.GetByGatewayOrderIDFn != nil {
		return s.GetByGatewayOrderIDFn(ctx, gatewayOrderID)
	}
	return &model.Order{ID: 1, UserID: 1, GatewayOrderID: gatewayOrderID, Status: model.OrderStatusPending}, nil
}

func (s OrderRepoStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s OrderRepoStub) ListAll(ctx context.Context) ([]model.OrderView, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

func (s OrderRepoStub) CompletedNoteIDs(ctx context.Context, userID int64, noteIDs []int64) ([]int64, error) {
	if s.CompletedNoteIDsFn != nil {
		return s.CompletedNoteIDsFn(ctx, userID, noteIDs)
	}
	return nil, nil
}

func (s OrderRepoStub) HasCompletedWithNote(ctx context.Context, userID, noteID int64) (bool, error) {
	if s.HasCompletedWithNoteFn != nil {
		return s.HasCompletedWithNoteFn(ctx, userID, noteID)
	}
	return false, nil
}

func (s OrderRepoStub) MarkCompleted(ctx context.Context, gatewayOrderID, paymentID, signature string) (*model.Order, error) {
	if s.MarkCompletedFn != nil {
		return s.MarkCompletedFn(ctx, gatewayOrderID, paymentID, signature)
	}
	return &model.Order{ID: 1, GatewayOrderID: gatewayOrderID, GatewayPaymentID: paymentID, Status: model.OrderStatusCompleted}, nil
}

func (s OrderRepoStub) MarkFailed(ctx context.Context, gatewayOrderID string) error {
	if s.MarkFailedFn != nil {
		return s.MarkFailedFn(ctx, gatewayOrderID)
	}
	return nil
}

func (s OrderRepoStub) Stats(ctx context.Context) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.OrderStats{}, nil
}

// ContactRepoStub provides controllable contact persistence for tests.
type ContactRepoStub struct {
	CreateFn func(context.Context, string, string, string, string) (*model.Contact, error)
	ListFn   func(context.Context) ([]model.Contact, error)
	DeleteFn func(context.Context, int64) error
	CountFn  func(context.Context) (int64, error)
}

func (s ContactRepoStub) Create(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, email, subject, message)
	}
	return &model.Contact{ID: 1, Name: name, Email: email, Subject: subject, Message: message}, nil
}

func (s ContactRepoStub) List(ctx context.Context) ([]model.Contact, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s ContactRepoStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s ContactRepoStub) Count(ctx context.Context) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	return 0, nil
}
