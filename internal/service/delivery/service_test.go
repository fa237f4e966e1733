package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

func testNotification() domain.ScheduledNotification {
	event := domain.NewDomainEvent(domain.CategoryLead, "l-1", "Bob", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	return domain.NewScheduledNotification(event, domain.OffsetDayOf,
		time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), "Lead Follow-up Today", "Follow up with Bob today")
}

func TestDeliver_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := domain.NewMockDeviceRepository(ctrl)
	mockSender := domain.NewMockPushSender(ctrl)

	mockDevices.EXPECT().ListTokens(gomock.Any()).Return([]string{"tok-1", "tok-2", "tok-3"}, nil)
	mockSender.EXPECT().
		Send(gomock.Any(), []string{"tok-1", "tok-2", "tok-3"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, msg domain.PushMessage) (*domain.PushResult, error) {
			if msg.Title != "Lead Follow-up Today" {
				t.Errorf("title: got %q", msg.Title)
			}
			if msg.Data["notification_id"] != "lead:l-1:day" {
				t.Errorf("data notification_id: got %q", msg.Data["notification_id"])
			}
			if msg.Data[domain.PayloadCategory] != "lead" {
				t.Errorf("data category: got %q", msg.Data[domain.PayloadCategory])
			}
			return &domain.PushResult{SuccessCount: 2, FailureCount: 1, InvalidTokens: []string{"tok-2"}}, nil
		})
	mockDevices.EXPECT().RemoveTokens(gomock.Any(), "tok-2").Return(nil)

	svc := NewService(mockDevices, mockSender, nil)

	result, err := svc.Deliver(context.Background(), testNotification())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TokenCount != 3 || result.SuccessCount != 2 || result.RemovedTokens != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestDeliver_Skips(t *testing.T) {
	tests := []struct {
		name       string
		withSender bool
		tokens     []string
		wantReason string
	}{
		{name: "push disabled", withSender: false, wantReason: "push disabled"},
		{name: "no devices", withSender: true, tokens: []string{}, wantReason: "no registered devices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDevices := domain.NewMockDeviceRepository(ctrl)
			var sender domain.PushSender
			if tt.withSender {
				mockSender := domain.NewMockPushSender(ctrl)
				mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				sender = mockSender
				mockDevices.EXPECT().ListTokens(gomock.Any()).Return(tt.tokens, nil)
			}

			svc := NewService(mockDevices, sender, nil)

			result, err := svc.Deliver(context.Background(), testNotification())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Skipped || result.SkipReason != tt.wantReason {
				t.Errorf("unexpected result: %+v", result)
			}
		})
	}
}

func TestDeliver_Errors(t *testing.T) {
	t.Run("device listing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDevices := domain.NewMockDeviceRepository(ctrl)
		mockSender := domain.NewMockPushSender(ctrl)
		mockDevices.EXPECT().ListTokens(gomock.Any()).Return(nil, errors.New("redis down"))

		svc := NewService(mockDevices, mockSender, nil)
		if _, err := svc.Deliver(context.Background(), testNotification()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("push fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDevices := domain.NewMockDeviceRepository(ctrl)
		mockSender := domain.NewMockPushSender(ctrl)
		mockDevices.EXPECT().ListTokens(gomock.Any()).Return([]string{"tok-1"}, nil)
		mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("fcm unavailable"))

		svc := NewService(mockDevices, mockSender, nil)
		if _, err := svc.Deliver(context.Background(), testNotification()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("token cleanup failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDevices := domain.NewMockDeviceRepository(ctrl)
		mockSender := domain.NewMockPushSender(ctrl)
		mockDevices.EXPECT().ListTokens(gomock.Any()).Return([]string{"tok-1"}, nil)
		mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.PushResult{FailureCount: 1, InvalidTokens: []string{"tok-1"}}, nil)
		mockDevices.EXPECT().RemoveTokens(gomock.Any(), "tok-1").Return(errors.New("redis down"))

		svc := NewService(mockDevices, mockSender, nil)
		result, err := svc.Deliver(context.Background(), testNotification())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RemovedTokens != 0 {
			t.Errorf("removed tokens: got %d, want 0", result.RemovedTokens)
		}
	})
}
