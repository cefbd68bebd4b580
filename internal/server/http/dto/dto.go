// Package dto contains transport representations of domain models. Every
// response uses the same envelope so clients can branch on success alone.
package dto

import (
	"time"

	"github.com/notemart/notemart/internal/domain/model"
)

// Response is the uniform API envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps data with a human message.
func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList wraps a list and reports its length.
func OKList(count int, data any) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// Fail builds an error envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// --- auth ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func FromUser(u *model.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// --- catalog ---

type BoardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type Board struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBoard(b *model.Board) Board {
	return Board{ID: b.ID, Name: b.Name, Description: b.Description, IsActive: b.IsActive, CreatedAt: b.CreatedAt}
}

func FromBoards(boards []model.Board) []Board {
	result := make([]Board, 0, len(boards))
	for i := range boards {
		result = append(result, FromBoard(&boards[i]))
	}
	return result
}

type StreamRequest struct {
	BoardID int64  `json:"boardId"`
	Name    string `json:"name" binding:"required"`
}

type Stream struct {
	ID        int64     `json:"id"`
	BoardID   int64     `json:"boardId"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromStream(s *model.Stream) Stream {
	return Stream{ID: s.ID, BoardID: s.BoardID, Name: s.Name, IsActive: s.IsActive, CreatedAt: s.CreatedAt}
}

func FromStreams(streams []model.Stream) []Stream {
	result := make([]Stream, 0, len(streams))
	for i := range streams {
		result = append(result, FromStream(&streams[i]))
	}
	return result
}

type SubjectRequest struct {
	StreamID int64  `json:"streamId"`
	Name     string `json:"name" binding:"required"`
}

type Subject struct {
	ID        int64     `json:"id"`
	StreamID  int64     `json:"streamId"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromSubject(s *model.Subject) Subject {
	return Subject{ID: s.ID, StreamID: s.StreamID, Name: s.Name, IsActive: s.IsActive, CreatedAt: s.CreatedAt}
}

func FromSubjects(subjects []model.Subject) []Subject {
	result := make([]Subject, 0, len(subjects))
	for i := range subjects {
		result = append(result, FromSubject(&subjects[i]))
	}
	return result
}

// --- notes ---

// Note omits the stored file name: the download endpoint is the only way to
// reach note content.
type Note struct {
	ID           int64     `json:"id"`
	SubjectID    int64     `json:"subjectId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Pages        int       `json:"pages"`
	PreviewImage string    `json:"previewImage,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`

	SubjectName string `json:"subjectName,omitempty"`
	StreamID    int64  `json:"streamId,omitempty"`
	StreamName  string `json:"streamName,omitempty"`
	BoardID     int64  `json:"boardId,omitempty"`
	BoardName   string `json:"boardName,omitempty"`

	Purchased *bool `json:"purchased,omitempty"`
}

func FromNoteView(v *model.NoteView) Note {
	return Note{
		ID:           v.ID,
		SubjectID:    v.SubjectID,
		Title:        v.Title,
		Description:  v.Description,
		Price:        v.Price,
		Pages:        v.Pages,
		PreviewImage: v.PreviewImage,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		SubjectName:  v.SubjectName,
		StreamID:     v.StreamID,
		StreamName:   v.StreamName,
		BoardID:      v.BoardID,
		BoardName:    v.BoardName,
	}
}

func FromNoteViews(views []model.NoteView) []Note {
	result := make([]Note, 0, len(views))
	for i := range views {
		result = append(result, FromNoteView(&views[i]))
	}
	return result
}

// --- orders ---

type CreateOrderRequest struct {
	NoteIDs []int64 `json:"noteIds" binding:"required"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpayOrderId" binding:"required"`
	GatewayPaymentID string `json:"razorpayPaymentId" binding:"required"`
	GatewaySignature string `json:"razorpaySignature" binding:"required"`
}

type PaymentIntent struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Key      string  `json:"key"`
}

func FromPaymentIntent(p *model.PaymentIntent) PaymentIntent {
	return PaymentIntent{OrderID: p.GatewayOrderID, Amount: p.Amount, Currency: p.Currency, Key: p.Key}
}

type OrderItem struct {
	NoteID int64   `json:"noteId"`
	Title  string  `json:"title,omitempty"`
	Price  float64 `json:"price"`
}

type Order struct {
	ID             int64      `json:"id"`
	Items          []OrderItem `json:"items"`
	TotalAmount    float64    `json:"totalAmount"`
	Currency       string     `json:"currency"`
	GatewayOrderID string     `json:"gatewayOrderId"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`

	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}

func fromOrderItems(items []model.OrderItem) []OrderItem {
	result := make([]OrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, OrderItem{NoteID: item.NoteID, Title: item.Title, Price: item.Price})
	}
	return result
}

func FromOrder(o *model.Order) Order {
	return Order{
		ID:             o.ID,
		Items:          fromOrderItems(o.Items),
		TotalAmount:    o.TotalAmount,
		Currency:       o.Currency,
		GatewayOrderID: o.GatewayOrderID,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		CompletedAt:    o.CompletedAt,
	}
}

func FromOrders(orders []model.Order) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, FromOrder(&orders[i]))
	}
	return result
}

func FromOrderView(v *model.OrderView) Order {
	order := FromOrder(&v.Order)
	order.UserName = v.UserName
	order.UserEmail = v.UserEmail
	return order
}

func FromOrderViews(views []model.OrderView) []Order {
	result := make([]Order, 0, len(views))
	for i := range views {
		result = append(result, FromOrderView(&views[i]))
	}
	return result
}

// --- contact ---

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromContact(c *model.Contact) Contact {
	return Contact{ID: c.ID, Name: c.Name, Email: c.Email, Subject: c.Subject, Message: c.Message, CreatedAt: c.CreatedAt}
}

func FromContacts(contacts []model.Contact) []Contact {
	result := make([]Contact, 0, len(contacts))
	for i := range contacts {
		result = append(result, FromContact(&contacts[i]))
	}
	return result
}

// --- stats ---

type StoreStats struct {
	TotalUsers      int64   `json:"totalUsers"`
	TotalNotes      int64   `json:"totalNotes"`
	TotalOrders     int64   `json:"totalOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalContacts   int64   `json:"totalContacts"`
}

func FromStoreStats(s *model.StoreStats) StoreStats {
	return StoreStats{
		TotalUsers:      s.TotalUsers,
		TotalNotes:      s.TotalNotes,
		TotalOrders:     s.TotalOrders,
		CompletedOrders: s.CompletedOrders,
		PendingOrders:   s.PendingOrders,
		TotalRevenue:    s.TotalRevenue,
		TotalContacts:   s.TotalContacts,
	}
}
