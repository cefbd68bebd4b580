package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/server/http/middleware"
	testhelpers "github.com/notemart/notemart/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func asUser(userID int64, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, userID)
		c.Set(middleware.RoleContextKey, role)
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAuthHandlerRegister(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{}, time.Hour)
	engine := gin.New()
	engine.POST("/register", handler.Register)

	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"name":"Alice","email":"a@b.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatal("expected success envelope")
	}
	data := body["data"].(map[string]any)
	if data["token"] != "token" {
		t.Fatalf("expected token in response, got %v", data)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "auth_token=") {
		t.Fatal("expected auth cookie")
	}
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.Conflict("email already registered")
		},
	}
	handler := NewAuthHandler(facade, time.Hour)
	engine := gin.New()
	engine.POST("/register", handler.Register)

	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"name":"Alice","email":"a@b.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "email already registered" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(facade, time.Hour)
	engine := gin.New()
	engine.POST("/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	engine := gin.New()
	engine.POST("/orders", asUser(1, model.RoleUser), handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"noteIds":[1,2]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	payment := data["payment"].(map[string]any)
	if payment["orderId"] != "order_stub" {
		t.Fatalf("expected gateway order id, got %v", payment)
	}
}

func TestOrderHandlerCreateErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", domainErrors.Conflict("already purchased"), http.StatusBadRequest},
		{"not found", domainErrors.NotFound("missing note"), http.StatusNotFound},
		{"gateway", domainErrors.Gateway("failed to create payment order"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := testhelpers.OrderFacadeStub{
				CreateIntentFn: func(context.Context, int64, []int64) (*model.PaymentIntent, *model.Order, error) {
					return nil, nil, tc.err
				},
			}
			handler := NewOrderHandler(facade)
			engine := gin.New()
			engine.POST("/orders", asUser(1, model.RoleUser), handler.Create)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"noteIds":[1]}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestOrderHandlerVerify(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	engine := gin.New()
	engine.POST("/orders/verify", asUser(1, model.RoleUser), handler.Verify)

	payload := `{"razorpayOrderId":"order_1","razorpayPaymentId":"pay_1","razorpaySignature":"sig"}`
	req := httptest.NewRequest(http.MethodPost, "/orders/verify", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["status"] != string(model.OrderStatusCompleted) {
		t.Fatalf("expected completed order, got %v", data["status"])
	}
}

func TestOrderHandlerVerifyFailure(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{
		VerifyFn: func(context.Context, int64, string, string, string) (*model.Order, error) {
			return nil, domainErrors.ErrPaymentVerification
		},
	}
	handler := NewOrderHandler(facade)
	engine := gin.New()
	engine.POST("/orders/verify", asUser(1, model.RoleUser), handler.Verify)

	payload := `{"razorpayOrderId":"order_1","razorpayPaymentId":"pay_1","razorpaySignature":"bad"}`
	req := httptest.NewRequest(http.MethodPost, "/orders/verify", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandlerVerifyMissingFields(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	engine := gin.New()
	engine.POST("/orders/verify", asUser(1, model.RoleUser), handler.Verify)

	req := httptest.NewRequest(http.MethodPost, "/orders/verify", strings.NewReader(`{"razorpayOrderId":"order_1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNoteHandlerListPassesFilter(t *testing.T) {
	var gotFilter model.NoteFilter
	facade := testhelpers.NoteFacadeStub{
		ListNotesFn: func(_ context.Context, filter model.NoteFilter) ([]model.NoteView, error) {
			gotFilter = filter
			return []model.NoteView{{Note: model.Note{ID: 1, Title: "n", IsActive: true}}}, nil
		},
	}
	handler := NewNoteHandler(facade, nil)
	engine := gin.New()
	engine.GET("/notes", handler.List)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes?subjectId=3&boardId=2&search=algebra", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.SubjectID != 3 || gotFilter.BoardID != 2 || gotFilter.Search != "algebra" {
		t.Fatalf("unexpected filter %+v", gotFilter)
	}
	if body := decodeBody(t, rec); body["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", body["count"])
	}
}

func TestNoteHandlerUpdateKeepsOmittedFields(t *testing.T) {
	stored := model.Note{
		ID: 5, SubjectID: 3, Title: "Algebra", Description: "Fractions and equations",
		Price: 50, Pages: 10, FileName: "a.pdf", IsActive: true,
	}
	var gotUpdate *model.Note
	facade := testhelpers.NoteFacadeStub{
		GetNoteFn: func(context.Context, int64, int64, model.Role) (*model.NoteView, bool, error) {
			return &model.NoteView{Note: stored}, false, nil
		},
		UpdateNoteFn: func(_ context.Context, note *model.Note) (*model.Note, error) {
			gotUpdate = note
			return note, nil
		},
	}
	handler := NewNoteHandler(facade, nil)
	engine := gin.New()
	engine.PUT("/notes/:id", asUser(1, model.RoleAdmin), handler.Update)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("price", "79.5")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPut, "/notes/5", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUpdate == nil {
		t.Fatal("expected update to reach the facade")
	}
	if gotUpdate.Price != 79.5 {
		t.Fatalf("expected new price, got %v", gotUpdate.Price)
	}
	if gotUpdate.Title != "Algebra" || gotUpdate.Description != "Fractions and equations" {
		t.Fatalf("omitted fields must keep stored values, got title=%q description=%q",
			gotUpdate.Title, gotUpdate.Description)
	}
	if gotUpdate.SubjectID != 3 || gotUpdate.Pages != 10 || gotUpdate.FileName != "a.pdf" {
		t.Fatalf("unexpected update %+v", gotUpdate)
	}
}

func TestNoteHandlerDownloadForbidden(t *testing.T) {
	facade := testhelpers.NoteFacadeStub{
		ResolveDownloadFn: func(context.Context, int64, int64, model.Role) (*model.Note, error) {
			return nil, domainErrors.Forbidden("purchase required to download this note")
		},
	}
	handler := NewNoteHandler(facade, nil)
	engine := gin.New()
	engine.GET("/notes/:id/download", asUser(1, model.RoleUser), handler.Download)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes/5/download", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestContactHandlerSubmit(t *testing.T) {
	handler := NewContactHandler(testhelpers.ContactFacadeStub{})
	engine := gin.New()
	engine.POST("/contact", handler.Submit)

	payload := `{"name":"Bob","email":"b@c.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestContactHandlerSubmitMissingFields(t *testing.T) {
	handler := NewContactHandler(testhelpers.ContactFacadeStub{})
	engine := gin.New()
	engine.POST("/contact", handler.Submit)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"Bob"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStatsHandler(t *testing.T) {
	facade := testhelpers.StatsFacadeStub{
		StatsFn: func(context.Context) (*model.StoreStats, error) {
			return &model.StoreStats{TotalUsers: 2, TotalRevenue: 500}, nil
		},
	}
	handler := NewStatsHandler(facade)
	engine := gin.New()
	engine.GET("/stats", asUser(1, model.RoleAdmin), handler.Stats)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["totalUsers"] != float64(2) || data["totalRevenue"] != float64(500) {
		t.Fatalf("unexpected stats %v", data)
	}
}

func TestCatalogHandlerInvalidID(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{})
	engine := gin.New()
	engine.DELETE("/boards/:id", handler.DeleteBoard)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/boards/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	facade := testhelpers.StatsFacadeStub{
		StatsFn: func(context.Context) (*model.StoreStats, error) {
			return nil, context.DeadlineExceeded
		},
	}
	handler := NewStatsHandler(facade)
	engine := gin.New()
	engine.GET("/stats", handler.Stats)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "internal server error" {
		t.Fatalf("internal error text must not leak, got %v", body["message"])
	}
}
