package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/jwt"
	"funkdesk/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	meResult      *dto.UserResponse
	meErr         error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims, _ string) error {
	return m.logoutErr
}
func (m *mockAuthService) Me(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.meResult, m.meErr
}

// ── mock AbsenceService ──

type mockAbsenceService struct {
	submitResult *dto.AbsenceResponse
	submitErr    error
	listResult   *dto.AbsenceListResponse
	listErr      error
	getResult    *dto.AbsenceResponse
	getErr       error
	updateResult *dto.AbsenceResponse
	updateErr    error
}

func (m *mockAbsenceService) Submit(_ context.Context, _ service.Principal, _ *dto.SubmitAbsenceRequest) (*dto.AbsenceResponse, error) {
	return m.submitResult, m.submitErr
}
func (m *mockAbsenceService) List(_ context.Context, _ service.Principal, _ *dto.AbsenceListRequest) (*dto.AbsenceListResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockAbsenceService) GetByID(_ context.Context, _ string) (*dto.AbsenceResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockAbsenceService) UpdateStatus(_ context.Context, _ service.Principal, _ string, _ string) (*dto.AbsenceResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockAbsenceService) SessionInfo(p service.Principal) *dto.SessionResponse {
	role, userID := p.Role, p.UserID
	return &dto.SessionResponse{Role: &role, UserID: &userID}
}

// ── mock ScheduledPostService ──

type mockScheduledPostService struct {
	createResult *dto.ScheduledPostResponse
	createErr    error
	listResult   []dto.ScheduledPostResponse
	listErr      error
	getResult    *dto.ScheduledPostResponse
	getErr       error
	updateResult *dto.ScheduledPostResponse
	updateErr    error
	deleteErr    error
}

func (m *mockScheduledPostService) Create(_ context.Context, _ *dto.CreateScheduledPostRequest, _ string) (*dto.ScheduledPostResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockScheduledPostService) List(_ context.Context) ([]dto.ScheduledPostResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockScheduledPostService) GetByID(_ context.Context, _ string) (*dto.ScheduledPostResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockScheduledPostService) Update(_ context.Context, _ string, _ *dto.UpdateScheduledPostRequest, _ string) (*dto.ScheduledPostResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockScheduledPostService) Delete(_ context.Context, _ string, _ string) error {
	return m.deleteErr
}

// ── helpers ──

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// withAuth injects the context values the JWT middleware would set.
func withAuth(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

// ── AuthHandler ──

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access",
			RefreshToken: "test-refresh",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "anna",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "anna",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

// ── AbsenceHandler ──

func TestAbsenceHandler_Submit_Created(t *testing.T) {
	mock := &mockAbsenceService{
		submitResult: &dto.AbsenceResponse{
			ID:        "absence-1",
			StartDate: "2026-09-10",
			EndDate:   "2026-09-12",
			Status:    model.AbsenceStatusPending,
		},
	}
	h := NewAbsenceHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/team/absences", jsonBody(dto.SubmitAbsenceRequest{
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/team/absences", withAuth("u1", model.RoleContent), h.Submit)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestAbsenceHandler_Submit_Unauthenticated(t *testing.T) {
	h := NewAbsenceHandler(&mockAbsenceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/team/absences", jsonBody(dto.SubmitAbsenceRequest{
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
	}))
	req.Header.Set("Content-Type", "application/json")

	// no auth middleware: context carries no principal
	r := gin.New()
	r.POST("/team/absences", h.Submit)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAbsenceHandler_Submit_EndBeforeStart(t *testing.T) {
	h := NewAbsenceHandler(&mockAbsenceService{submitErr: service.ErrAbsenceEndBeforeStart})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/team/absences", jsonBody(dto.SubmitAbsenceRequest{
		StartDate: "2026-09-12",
		EndDate:   "2026-09-10",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/team/absences", withAuth("u1", model.RoleContent), h.Submit)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 13003 {
		t.Errorf("expected error code 13003, got %d", resp.Code)
	}
}

func TestAbsenceHandler_UpdateStatus_Forbidden(t *testing.T) {
	h := NewAbsenceHandler(&mockAbsenceService{updateErr: service.ErrAbsenceNotAuthorized})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/team/absences/absence-1/status", jsonBody(dto.UpdateAbsenceStatusRequest{
		NewStatus: model.AbsenceStatusApproved,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/team/absences/:id/status", withAuth("u1", model.RoleContent), h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestAbsenceHandler_Session(t *testing.T) {
	h := NewAbsenceHandler(&mockAbsenceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/team/absences/session", nil)

	r := gin.New()
	r.GET("/team/absences/session", withAuth("u1", model.RoleDeveloper), h.Session)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data dto.SessionResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Role == nil || *resp.Data.Role != model.RoleDeveloper {
		t.Errorf("expected role Developer in session, got %v", resp.Data.Role)
	}
}

// ── ScheduledPostHandler ──

func TestScheduledPostHandler_Update_StaleEdit(t *testing.T) {
	h := NewScheduledPostHandler(&mockScheduledPostService{updateErr: service.ErrPostStaleEdit})

	title := "Neu"
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/scheduled-posts/post-1", jsonBody(dto.UpdateScheduledPostRequest{
		Title:   &title,
		Version: 1,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/scheduled-posts/:id", withAuth("u1", model.RoleContent), h.Update)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 15004 {
		t.Errorf("expected error code 15004, got %d", resp.Code)
	}
}
