package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/service"
	"github.com/Hypha-Media-UK/rotascope2/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock FreezeService ──

type mockFreezeService struct {
	frozenDates []time.Time
	err         error
}

func (m *mockFreezeService) Freeze(_ context.Context, date time.Time) (*dto.FreezeResponse, error) {
	m.frozenDates = append(m.frozenDates, date)
	if m.err != nil {
		return nil, m.err
	}
	return &dto.FreezeResponse{ID: "frozen-1", Date: date.Format("2006-01-02")}, nil
}

func (m *mockFreezeService) GetFrozen(_ context.Context, _ time.Time) (*dto.FrozenScheduleResponse, error) {
	return nil, service.ErrFrozenScheduleNotFound
}

func (m *mockFreezeService) GetFrozenAssignments(_ context.Context, _ time.Time) ([]dto.FrozenAssignmentResponse, error) {
	return nil, service.ErrFrozenScheduleNotFound
}

// ── test helpers ──

func setupFreezeHandler() (*ScheduleHandler, *mockFreezeService) {
	mock := &mockFreezeService{}
	scheduler := service.NewFreezeScheduler(mock, time.UTC, zap.NewNop())
	return NewScheduleHandler(nil, mock, scheduler), mock
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ── ScheduleHandler freeze tests ──

func TestScheduleHandler_Freeze_EmptyBodyDefaultsToToday(t *testing.T) {
	h, mock := setupFreezeHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/freeze", nil)

	r := gin.New()
	r.POST("/schedule/freeze", h.FreezeSchedule)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if len(mock.frozenDates) != 1 {
		t.Fatalf("expected exactly one freeze call, got %d", len(mock.frozenDates))
	}
	today := time.Now().Format("2006-01-02")
	if got := mock.frozenDates[0].Format("2006-01-02"); got != today {
		t.Errorf("bare trigger must freeze today (%s), got %s", today, got)
	}
}

func TestScheduleHandler_Freeze_ExplicitDate(t *testing.T) {
	h, mock := setupFreezeHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/freeze", jsonBody(dto.FreezeRequest{Date: "2025-01-03"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedule/freeze", h.FreezeSchedule)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if len(mock.frozenDates) != 1 || mock.frozenDates[0].Format("2006-01-02") != "2025-01-03" {
		t.Errorf("expected a freeze call for 2025-01-03, got %v", mock.frozenDates)
	}
}

func TestScheduleHandler_Freeze_MalformedBodyRejected(t *testing.T) {
	h, mock := setupFreezeHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/freeze", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedule/freeze", h.FreezeSchedule)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 10001 {
		t.Errorf("expected error code 10001, got %d", resp.Code)
	}
	if len(mock.frozenDates) != 0 {
		t.Errorf("a rejected request must not freeze anything, got %v", mock.frozenDates)
	}
}
