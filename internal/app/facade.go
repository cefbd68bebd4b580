package app

import (
	"context"

	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/usecase"
)

// StoreFacade aggregates use cases behind the single interface handlers
// consume.
type StoreFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	notes   *usecase.NoteUseCase
	orders  *usecase.OrderUseCase
	contact *usecase.ContactUseCase
	stats   *usecase.StatsUseCase
}

func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	notes *usecase.NoteUseCase,
	orders *usecase.OrderUseCase,
	contact *usecase.ContactUseCase,
	stats *usecase.StatsUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:    auth,
		catalog: catalog,
		notes:   notes,
		orders:  orders,
		contact: contact,
		stats:   stats,
	}
}

func (f *StoreFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Profile(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StoreFacade) SeedAdmin(ctx context.Context, email, password string) error {
	return f.auth.SeedAdmin(ctx, email, password)
}

func (f *StoreFacade) CreateBoard(ctx context.Context, name, description string) (*model.Board, error) {
	return f.catalog.CreateBoard(ctx, name, description)
}

func (f *StoreFacade) UpdateBoard(ctx context.Context, id int64, name, description string) (*model.Board, error) {
	return f.catalog.UpdateBoard(ctx, id, name, description)
}

func (f *StoreFacade) DeactivateBoard(ctx context.Context, id int64) error {
	return f.catalog.DeactivateBoard(ctx, id)
}

func (f *StoreFacade) GetBoard(ctx context.Context, id int64) (*model.Board, error) {
	return f.catalog.GetBoard(ctx, id)
}

func (f *StoreFacade) ListBoards(ctx context.Context) ([]model.Board, error) {
	return f.catalog.ListBoards(ctx)
}

func (f *StoreFacade) CreateStream(ctx context.Context, boardID int64, name string) (*model.Stream, error) {
	return f.catalog.CreateStream(ctx, boardID, name)
}

func (f *StoreFacade) UpdateStream(ctx context.Context, id int64, name string) (*model.Stream, error) {
	return f.catalog.UpdateStream(ctx, id, name)
}

func (f *StoreFacade) DeactivateStream(ctx context.Context, id int64) error {
	return f.catalog.DeactivateStream(ctx, id)
}

func (f *StoreFacade) GetStream(ctx context.Context, id int64) (*model.Stream, error) {
	return f.catalog.GetStream(ctx, id)
}

func (f *StoreFacade) ListStreams(ctx context.Context, boardID int64) ([]model.Stream, error) {
	return f.catalog.ListStreams(ctx, boardID)
}

func (f *StoreFacade) CreateSubject(ctx context.Context, streamID int64, name string) (*model.Subject, error) {
	return f.catalog.CreateSubject(ctx, streamID, name)
}

func (f *StoreFacade) UpdateSubject(ctx context.Context, id int64, name string) (*model.Subject, error) {
	return f.catalog.UpdateSubject(ctx, id, name)
}

func (f *StoreFacade) DeactivateSubject(ctx context.Context, id int64) error {
	return f.catalog.DeactivateSubject(ctx, id)
}

func (f *StoreFacade) GetSubject(ctx context.Context, id int64) (*model.Subject, error) {
	return f.catalog.GetSubject(ctx, id)
}

func (f *StoreFacade) ListSubjects(ctx context.Context, streamID int64) ([]model.Subject, error) {
	return f.catalog.ListSubjects(ctx, streamID)
}

func (f *StoreFacade) CreateNote(ctx context.Context, note *model.Note) (*model.Note, error) {
	return f.notes.Create(ctx, note)
}

func (f *StoreFacade) UpdateNote(ctx context.Context, note *model.Note) (*model.Note, error) {
	return f.notes.Update(ctx, note)
}

func (f *StoreFacade) DeactivateNote(ctx context.Context, id int64) error {
	return f.notes.Deactivate(ctx, id)
}

func (f *StoreFacade) GetNote(ctx context.Context, id, userID int64, role model.Role) (*model.NoteView, bool, error) {
	return f.notes.Get(ctx, id, userID, role)
}

func (f *StoreFacade) ListNotes(ctx context.Context, filter model.NoteFilter) ([]model.NoteView, error) {
	return f.notes.List(ctx, filter)
}

func (f *StoreFacade) ResolveDownload(ctx context.Context, noteID, userID int64, role model.Role) (*model.Note, error) {
	return f.notes.CanDownload(ctx, noteID, userID, role)
}

func (f *StoreFacade) CreatePurchaseIntent(ctx context.Context, userID int64, noteIDs []int64) (*model.PaymentIntent, *model.Order, error) {
	return f.orders.CreatePurchaseIntent(ctx, userID, noteIDs)
}

func (f *StoreFacade) VerifyPurchase(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*model.Order, error) {
	return f.orders.VerifyPurchase(ctx, userID, gatewayOrderID, paymentID, signature)
}

func (f *StoreFacade) UserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.Orders(ctx, userID)
}

func (f *StoreFacade) AllOrders(ctx context.Context) ([]model.OrderView, error) {
	return f.orders.AllOrders(ctx)
}

func (f *StoreFacade) GetOrder(ctx context.Context, id, userID int64, role model.Role) (*model.OrderView, error) {
	return f.orders.Get(ctx, id, userID, role)
}

func (f *StoreFacade) SubmitContact(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	return f.contact.Submit(ctx, name, email, subject, message)
}

func (f *StoreFacade) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return f.contact.List(ctx)
}

func (f *StoreFacade) DeleteContact(ctx context.Context, id int64) error {
	return f.contact.Delete(ctx, id)
}

func (f *StoreFacade) Stats(ctx context.Context) (*model.StoreStats, error) {
	return f.stats.Collect(ctx)
}
