package test

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, model.Role, error)
	ProfileFn      func(context.Context, int64) (*model.User, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: model.RoleUser}, "token", nil
}

func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, model.RoleUser, nil
}

func (s AuthFacadeStub) Profile(ctx context.Context, id int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.RoleUser}, nil
}

// CatalogFacadeStub simulates taxonomy operations.
type CatalogFacadeStub struct {
	CreateBoardFn       func(context.Context, string, string) (*model.Board, error)
	UpdateBoardFn       func(context.Context, int64, string, string) (*model.Board, error)
	DeactivateBoardFn   func(context.Context, int64) error
	GetBoardFn          func(context.Context, int64) (*model.Board, error)
	ListBoardsFn        func(context.Context) ([]model.Board, error)
	CreateStreamFn      func(context.Context, int64, string) (*model.Stream, error)
	UpdateStreamFn      func(context.Context, int64, string) (*model.Stream, error)
	DeactivateStreamFn  func(context.Context, int64) error
	GetStreamFn         func(context.Context, int64) (*model.Stream, error)
	ListStreamsFn       func(context.Context, int64) ([]model.Stream, error)
	CreateSubjectFn     func(context.Context, int64, string) (*model.Subject, error)
	UpdateSubjectFn     func(context.Context, int64, string) (*model.Subject, error)
	DeactivateSubjectFn func(context.Context, int64) error
	GetSubjectFn        func(context.Context, int64) (*model.Subject, error)
	ListSubjectsFn      func(context.Context, int64) ([]model.Subject, error)
}

func (s CatalogFacadeStub) CreateBoard(ctx context.Context, name, description string) (*model.Board, error) {
	if s.CreateBoardFn != nil {
		return s.CreateBoardFn(ctx, name, description)
	}
	return &model.Board{ID: 1, Name: name, Description: description, IsActive: true}, nil
}

func (s CatalogFacadeStub) UpdateBoard(ctx context.Context, id int64, name, description string) (*model.Board, error) {
	if s.UpdateBoardFn != nil {
		return s.UpdateBoardFn(ctx, id, name, description)
	}
	return &model.Board{ID: id, Name: name, Description: description, IsActive: true}, nil
}

func (s CatalogFacadeStub) DeactivateBoard(ctx context.Context, id int64) error {
	if s.DeactivateBoardFn != nil {
		return s.DeactivateBoardFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) GetBoard(ctx context.Context, id int64) (*model.Board, error) {
	if s.GetBoardFn != nil {
		return s.GetBoardFn(ctx, id)
	}
	return &model.Board{ID: id, Name: "board", IsActive: true}, nil
}

func (s CatalogFacadeStub) ListBoards(ctx context.Context) ([]model.Board, error) {
	if s.ListBoardsFn != nil {
		return s.ListBoardsFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) CreateStream(ctx context.Context, boardID int64, name string) (*model.Stream, error) {
	if s.CreateStreamFn != nil {
		return s.CreateStreamFn(ctx, boardID, name)
	}
	return &model.Stream{ID: 1, BoardID: boardID, Name: name, IsActive: true}, nil
}

func (s CatalogFacadeStub) UpdateStream(ctx context.Context, id int64, name string) (*model.Stream, error) {
	if s.UpdateStreamFn != nil {
		return s.UpdateStreamFn(ctx, id, name)
	}
	return &model.Stream{ID: id, Name: name, IsActive: true}, nil
}

func (s CatalogFacadeStub) DeactivateStream(ctx context.Context, id int64) error {
	if s.DeactivateStreamFn != nil {
		return s.DeactivateStreamFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) GetStream(ctx context.Context, id int64) (*model.Stream, error) {
	if s.GetStreamFn != nil {
		return s.GetStreamFn(ctx, id)
	}
	return &model.Stream{ID: id, Name: "stream", IsActive: true}, nil
}

func (s CatalogFacadeStub) ListStreams(ctx context.Context, boardID int64) ([]model.Stream, error) {
	if s.ListStreamsFn != nil {
		return s.ListStreamsFn(ctx, boardID)
	}
	return nil, nil
}

func (s CatalogFacadeStub) CreateSubject(ctx context.Context, streamID int64, name string) (*model.Subject, error) {
	if s.CreateSubjectFn != nil {
		return s.CreateSubjectFn(ctx, streamID, name)
	}
	return &model.Subject{ID: 1, StreamID: streamID, Name: name, IsActive: true}, nil
}

func (s CatalogFacadeStub) UpdateSubject(ctx context.Context, id int64, name string) (*model.Subject, error) {
	if s.UpdateSubjectFn != nil {
		return s.UpdateSubjectFn(ctx, id, name)
	}
	return &model.Subject{ID: id, Name: name, IsActive: true}, nil
}

func (s CatalogFacadeStub) DeactivateSubject(ctx context.Context, id int64) error {
	if s.DeactivateSubjectFn != nil {
		return s.DeactivateSubjectFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) GetSubject(ctx context.Context, id int64) (*model.Subject, error) {
	if s.GetSubjectFn != nil {
		return s.GetSubjectFn(ctx, id)
	}
	return &model.Subject{ID: id, Name: "subject", IsActive: true}, nil
}

func (s CatalogFacadeStub) ListSubjects(ctx context.Context, streamID int64) ([]model.Subject, error) {
	if s.ListSubjectsFn != nil {
		return s.ListSubjectsFn(ctx, streamID)
	}
	return nil, nil
}

// NoteFacadeStub simulates note operations for HTTP tests.
type NoteFacadeStub struct {
	CreateNoteFn      func(context.Context, *model.Note) (*model.Note, error)
	UpdateNoteFn      func(context.Context, *model.Note) (*model.Note, error)
	DeactivateNoteFn  func(context.Context, int64) error
	GetNoteFn         func(context.Context, int64, int64, model.Role) (*model.NoteView, bool, error)
	ListNotesFn       func(context.Context, model.NoteFilter) ([]model.NoteView, error)
	ResolveDownloadFn func(context.Context, int64, int64, model.Role) (*model.Note, error)
}

func (s NoteFacadeStub) CreateNote(ctx context.Context, note *model.Note) (*model.Note, error) {
	if s.CreateNoteFn != nil {
		return s.CreateNoteFn(ctx, note)
	}
	created := *note
	created.ID = 1
	return &created, nil
}

func (s NoteFacadeStub) UpdateNote(ctx context.Context, note *model.Note) (*model.Note, error) {
	if s.UpdateNoteFn != nil {
		return s.UpdateNoteFn(ctx, note)
	}
	return note, nil
}

func (s NoteFacadeStub) DeactivateNote(ctx context.Context, id int64) error {
	if s.DeactivateNoteFn != nil {
		return s.DeactivateNoteFn(ctx, id)
	}
	return nil
}

func (s NoteFacadeStub) GetNote(ctx context.Context, id, userID int64, role model.Role) (*model.NoteView, bool, error) {
	if s.GetNoteFn != nil {
		return s.GetNoteFn(ctx, id, userID, role)
	}
	return &model.NoteView{Note: model.Note{ID: id, Title: "note", IsActive: true}}, false, nil
}

func (s NoteFacadeStub) ListNotes(ctx context.Context, filter model.NoteFilter) ([]model.NoteView, error) {
	if s.ListNotesFn != nil {
		return s.ListNotesFn(ctx, filter)
	}
	return nil, nil
}

func (s NoteFacadeStub) ResolveDownload(ctx context.Context, noteID, userID int64, role model.Role) (*model.Note, error) {
	if s.ResolveDownloadFn != nil {
		return s.ResolveDownloadFn(ctx, noteID, userID, role)
	}
	return &model.Note{ID: noteID, Title: "note", FileName: "note.pdf"}, nil
}

// OrderFacadeStub simulates the purchase lifecycle for HTTP tests.
type OrderFacadeStub struct {
	CreateIntentFn func(context.Context, int64, []int64) (*model.PaymentIntent, *model.Order, error)
	VerifyFn       func(context.Context, int64, string, string, string) (*model.Order, error)
	UserOrdersFn   func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn    func(context.Context) ([]model.OrderView, error)
	GetOrderFn     func(context.Context, int64, int64, model.Role) (*model.OrderView, error)
}

func (s OrderFacadeStub) CreatePurchaseIntent(ctx context.Context, userID int64, noteIDs []int64) (*model.PaymentIntent, *model.Order, error) {
	if s.CreateIntentFn != nil {
		return s.CreateIntentFn(ctx, userID, noteIDs)
	}
	return &model.PaymentIntent{GatewayOrderID: "order_stub", Amount: 100, Currency: "INR", Key: "key"},
		&model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending, GatewayOrderID: "order_stub"}, nil
}

func (s OrderFacadeStub) VerifyPurchase(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*model.Order, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, userID, gatewayOrderID, paymentID, signature)
	}
	return &model.Order{ID: 1, UserID: userID, GatewayOrderID: gatewayOrderID, Status: model.OrderStatusCompleted}, nil
}

func (s OrderFacadeStub) UserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.UserOrdersFn != nil {
		return s.UserOrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.OrderView, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return nil, nil
}

func (s OrderFacadeStub) GetOrder(ctx context.Context, id, userID int64, role model.Role) (*model.OrderView, error) {
	if s.GetOrderFn != nil {
		return s.GetOrderFn(ctx, id, userID, role)
	}
	return &model.OrderView{Order: model.Order{ID: id, UserID: userID}}, nil
}

// ContactFacadeStub simulates the contact inbox.
type ContactFacadeStub struct {
	SubmitFn func(context.Context, string, string, string, string) (*model.Contact, error)
	ListFn   func(context.Context) ([]model.Contact, error)
	DeleteFn func(context.Context, int64) error
}

func (s ContactFacadeStub) SubmitContact(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, name, email, subject, message)
	}
	return &model.Contact{ID: 1, Name: name, Email: email, Subject: subject, Message: message}, nil
}

func (s ContactFacadeStub) ListContacts(ctx context.Context) ([]model.Contact, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s ContactFacadeStub) DeleteContact(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// StatsFacadeStub simulates dashboard counters.
type StatsFacadeStub struct {
	StatsFn func(context.Context) (*model.StoreStats, error)
}

func (s StatsFacadeStub) Stats(ctx context.Context) (*model.StoreStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.StoreStats{}, nil
}

// StoreFacadeStub aggregates facade stubs for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	NoteFacadeStub
	OrderFacadeStub
	ContactFacadeStub
	StatsFacadeStub
}

// HealthCheckerStub reports configurable backend health.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
