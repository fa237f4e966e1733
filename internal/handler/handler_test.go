package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/infra/repository"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/delivery"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/reminder"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReminderHandler_HandleRefresh(t *testing.T) {
	tests := []struct {
		name       string
		result     *reminder.PassResult
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "pass summary",
			result:     &reminder.PassResult{RunID: "run-1", SubmittedCount: 2},
			wantStatus: http.StatusOK,
		},
		{
			name:       "event source failure",
			err:        fmt.Errorf("%w: connection refused", domain.ErrEventSourceFailed),
			wantStatus: http.StatusBadGateway,
			wantError:  "event_source_error",
		},
		{
			name:       "cancel failure",
			err:        fmt.Errorf("%w: queue down", domain.ErrCancelFailed),
			wantStatus: http.StatusInternalServerError,
			wantError:  "cancel_error",
		},
		{
			name:       "other failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "processing_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := NewMockRefreshService(ctrl)
			refresher.EXPECT().Refresh(gomock.Any()).DoAndReturn(
				func(ctx context.Context) (*reminder.PassResult, error) {
					if got := reminder.TriggerFromContext(ctx); got != reminder.TriggerManual {
						t.Errorf("trigger = %q, want %q", got, reminder.TriggerManual)
					}
					return tt.result, tt.err
				},
			)

			h := NewReminderHandler(refresher, NewMockSchedulePreviewer(ctrl))
			r := gin.New()
			r.POST("/refresh", h.HandleRefresh)

			w := serve(r, http.MethodPost, "/refresh", nil)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantError != "" {
				var resp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode error response: %v", err)
				}
				if resp.Error != tt.wantError {
					t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
				}
				return
			}

			var got reminder.PassResult
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode pass result: %v", err)
			}
			if got.RunID != "run-1" || got.SubmittedCount != 2 {
				t.Errorf("unexpected pass result: %+v", got)
			}
		})
	}
}

func TestReminderHandler_HandleRefreshAsync(t *testing.T) {
	tests := []struct {
		name          string
		queued        bool
		wantCoalesced bool
	}{
		{name: "queued", queued: true, wantCoalesced: false},
		{name: "coalesced", queued: false, wantCoalesced: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := NewMockRefreshService(ctrl)
			refresher.EXPECT().Request(reminder.TriggerAsync).Return(tt.queued)

			h := NewReminderHandler(refresher, NewMockSchedulePreviewer(ctrl))
			r := gin.New()
			r.POST("/refresh/async", h.HandleRefreshAsync)

			w := serve(r, http.MethodPost, "/refresh/async", nil)
			if w.Code != http.StatusAccepted {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusAccepted)
			}

			var resp struct {
				Queued    bool `json:"queued"`
				Coalesced bool `json:"coalesced"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Coalesced != tt.wantCoalesced {
				t.Errorf("coalesced = %v, want %v", resp.Coalesced, tt.wantCoalesced)
			}
		})
	}
}

func TestReminderHandler_HandlePreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := NewMockRefreshService(ctrl)
	previewer := NewMockSchedulePreviewer(ctrl)

	departure := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	events := []domain.DomainEvent{
		domain.NewDomainEvent(domain.CategoryTrip, "c-1", "Alice", departure),
	}
	plan := &reminder.Plan{
		Retained: []domain.ScheduledNotification{
			{ID: "trip:c-1:before", Category: domain.CategoryTrip},
			{ID: "trip:c-1:day", Category: domain.CategoryTrip},
		},
	}

	refresher.EXPECT().Events(gomock.Any()).Return(events, nil)
	previewer.EXPECT().Preview(gomock.Any(), events).Return(plan)

	h := NewReminderHandler(refresher, previewer)
	r := gin.New()
	r.GET("/preview", h.HandlePreview)

	w := serve(r, http.MethodGet, "/preview", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		EventCount     int           `json:"event_count"`
		CandidateCount int           `json:"candidate_count"`
		Plan           reminder.Plan `json:"plan"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.EventCount != 1 || resp.CandidateCount != 2 || len(resp.Plan.Retained) != 2 {
		t.Errorf("unexpected preview: %+v", resp)
	}
}

func TestReminderHandler_HandlePreview_SourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := NewMockRefreshService(ctrl)
	refresher.EXPECT().Events(gomock.Any()).Return(nil, domain.ErrEventSourceFailed)

	h := NewReminderHandler(refresher, NewMockSchedulePreviewer(ctrl))
	r := gin.New()
	r.GET("/preview", h.HandlePreview)

	w := serve(r, http.MethodGet, "/preview", nil)
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}

type countingRequester struct {
	triggers []string
}

func (c *countingRequester) Request(trigger string) bool {
	c.triggers = append(c.triggers, trigger)
	return true
}

func TestPreferenceHandler(t *testing.T) {
	store := repository.NewMemoryPreferenceStore()
	requester := &countingRequester{}
	h := NewPreferenceHandler(store, requester)

	r := gin.New()
	r.GET("/preferences", h.HandleGet)
	r.PUT("/preferences", h.HandlePut)

	w := serve(r, http.MethodGet, "/preferences", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d", w.Code)
	}
	var got domain.NotificationPreferences
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != domain.DefaultPreferences() {
		t.Errorf("initial preferences = %+v, want defaults", got)
	}

	// Omitted "leads" is enabled; nothing is merged from the stored value.
	w = serve(r, http.MethodPut, "/preferences", `{"trips": false, "tasks": true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d", w.Code)
	}

	want := domain.NotificationPreferences{Trips: false, Tasks: true, Leads: true}
	if saved := store.GetPreferences(context.Background()); saved != want {
		t.Errorf("saved preferences = %+v, want %+v", saved, want)
	}
	if len(requester.triggers) != 1 || requester.triggers[0] != reminder.TriggerPreferences {
		t.Errorf("refresh requests = %v", requester.triggers)
	}

	w = serve(r, http.MethodPut, "/preferences", `{"trips": "nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid PUT status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if len(requester.triggers) != 1 {
		t.Errorf("invalid body should not request a refresh")
	}
}

func TestDeviceHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       any
		setup      func(m *domain.MockDeviceRepository)
		wantStatus int
	}{
		{
			name:   "register",
			method: http.MethodPost,
			body:   DeviceRequest{Token: "tok-1"},
			setup: func(m *domain.MockDeviceRepository) {
				m.EXPECT().AddToken(gomock.Any(), "tok-1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "register without token",
			method:     http.MethodPost,
			body:       `{}`,
			setup:      func(m *domain.MockDeviceRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "register storage failure",
			method: http.MethodPost,
			body:   DeviceRequest{Token: "tok-1"},
			setup: func(m *domain.MockDeviceRepository) {
				m.EXPECT().AddToken(gomock.Any(), "tok-1").Return(errors.New("redis down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "unregister",
			method: http.MethodDelete,
			body:   DeviceRequest{Token: "tok-1"},
			setup: func(m *domain.MockDeviceRepository) {
				m.EXPECT().RemoveTokens(gomock.Any(), "tok-1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			devices := domain.NewMockDeviceRepository(ctrl)
			tt.setup(devices)

			h := NewDeviceHandler(devices)
			r := gin.New()
			r.POST("/devices", h.HandleRegister)
			r.DELETE("/devices", h.HandleUnregister)

			w := serve(r, tt.method, "/devices", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

type fakeDeliverer struct {
	got    []domain.ScheduledNotification
	result *delivery.Result
	err    error
}

func (f *fakeDeliverer) Deliver(_ context.Context, n domain.ScheduledNotification) (*delivery.Result, error) {
	f.got = append(f.got, n)
	return f.result, f.err
}

func TestDeliveryHandler_HandleDeliver(t *testing.T) {
	fireAt := time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)
	validBody := map[string]any{
		"notification_id": "trip:c-1:before",
		"category":        "trip",
		"offset":          "before",
		"source_id":       "trip:c-1",
		"title":           "Trip tomorrow",
		"body":            "Alice departs tomorrow for Lisbon",
		"fire_at":         fireAt.Format(time.RFC3339),
	}

	tests := []struct {
		name        string
		body        any
		deliverer   *fakeDeliverer
		wantStatus  int
		wantDeliver bool
	}{
		{
			name:        "delivered",
			body:        validBody,
			deliverer:   &fakeDeliverer{result: &delivery.Result{NotificationID: "trip:c-1:before", SuccessCount: 1}},
			wantStatus:  http.StatusOK,
			wantDeliver: true,
		},
		{
			name:       "unknown category",
			body:       map[string]any{"notification_id": "x", "category": "meeting"},
			deliverer:  &fakeDeliverer{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"notification_id":`,
			deliverer:  &fakeDeliverer{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "delivery failure",
			body:        validBody,
			deliverer:   &fakeDeliverer{err: errors.New("fcm unavailable")},
			wantStatus:  http.StatusInternalServerError,
			wantDeliver: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewDeliveryHandler(tt.deliverer)
			r := gin.New()
			r.POST("/deliver", h.HandleDeliver)

			w := serve(r, http.MethodPost, "/deliver", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if !tt.wantDeliver {
				if len(tt.deliverer.got) != 0 {
					t.Errorf("deliverer should not be called")
				}
				return
			}

			if len(tt.deliverer.got) != 1 {
				t.Fatalf("deliver calls = %d, want 1", len(tt.deliverer.got))
			}
			n := tt.deliverer.got[0]
			if n.ID != "trip:c-1:before" || n.Category != domain.CategoryTrip || n.Offset != domain.OffsetDayBefore {
				t.Errorf("unexpected notification: %+v", n)
			}
			if !n.FireAt.Equal(fireAt) {
				t.Errorf("fire_at = %v, want %v", n.FireAt, fireAt)
			}
		})
	}
}
