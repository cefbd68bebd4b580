package handlers

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, model.Role, error)
	Profile(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade manages the board, stream and subject taxonomy.
type CatalogFacade interface {
	CreateBoard(ctx context.Context, name, description string) (*model.Board, error)
	UpdateBoard(ctx context.Context, id int64, name, description string) (*model.Board, error)
	DeactivateBoard(ctx context.Context, id int64) error
	GetBoard(ctx context.Context, id int64) (*model.Board, error)
	ListBoards(ctx context.Context) ([]model.Board, error)

	CreateStream(ctx context.Context, boardID int64, name string) (*model.Stream, error)
	UpdateStream(ctx context.Context, id int64, name string) (*model.Stream, error)
	DeactivateStream(ctx context.Context, id int64) error
	GetStream(ctx context.Context, id int64) (*model.Stream, error)
	ListStreams(ctx context.Context, boardID int64) ([]model.Stream, error)

	CreateSubject(ctx context.Context, streamID int64, name string) (*model.Subject, error)
	UpdateSubject(ctx context.Context, id int64, name string) (*model.Subject, error)
	DeactivateSubject(ctx context.Context, id int64) error
	GetSubject(ctx context.Context, id int64) (*model.Subject, error)
	ListSubjects(ctx context.Context, streamID int64) ([]model.Subject, error)
}

// NoteFacade exposes note catalog and download operations.
type NoteFacade interface {
	CreateNote(ctx context.Context, note *model.Note) (*model.Note, error)
	UpdateNote(ctx context.Context, note *model.Note) (*model.Note, error)
	DeactivateNote(ctx context.Context, id int64) error
	GetNote(ctx context.Context, id, userID int64, role model.Role) (*model.NoteView, bool, error)
	ListNotes(ctx context.Context, filter model.NoteFilter) ([]model.NoteView, error)
	ResolveDownload(ctx context.Context, noteID, userID int64, role model.Role) (*model.Note, error)
}

// OrderFacade exposes the purchase lifecycle.
type OrderFacade interface {
	CreatePurchaseIntent(ctx context.Context, userID int64, noteIDs []int64) (*model.PaymentIntent, *model.Order, error)
	VerifyPurchase(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*model.Order, error)
	UserOrders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.OrderView, error)
	GetOrder(ctx context.Context, id, userID int64, role model.Role) (*model.OrderView, error)
}

// ContactFacade exposes the contact inbox.
type ContactFacade interface {
	SubmitContact(ctx context.Context, name, email, subject, message string) (*model.Contact, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

// StatsFacade exposes dashboard counters.
type StatsFacade interface {
	Stats(ctx context.Context) (*model.StoreStats, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	NoteFacade
	OrderFacade
	ContactFacade
	StatsFacade
}
