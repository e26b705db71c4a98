package earningservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 45, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, 2*time.Second)
	service.now = func() time.Time { return fixedNow }
	return service, repo
}

func TestStartView(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	view := &domain.AdView{ID: 11, AccountID: 1, AdID: 1, Reward: decimal.RequireFromString("4.00"), DurationSeconds: 30}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedView  *domain.AdView
		expectedError error
	}{
		{
			name: "View started",
			prepareMock: func() {
				repo.EXPECT().Create(ctx, int64(1), int64(1)).Return(view, nil)
			},
			expectedView: view,
		},
		{
			name: "Inactive account",
			prepareMock: func() {
				repo.EXPECT().Create(ctx, int64(1), int64(1)).Return(nil, domain.ErrUnauthorized)
			},
			expectedError: domain.ErrUnauthorized,
		},
		{
			name: "Unknown ad",
			prepareMock: func() {
				repo.EXPECT().Create(ctx, int64(1), int64(1)).Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.StartView(ctx, 1, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedView, result)
			}
		})
	}
}

func TestCompleteView(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	completedAt := fixedNow
	view := &domain.AdView{ID: 11, AccountID: 1, Completed: true, CompletedAt: &completedAt, Reward: decimal.RequireFromString("4.00")}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Credited once",
			prepareMock: func() {
				repo.EXPECT().Complete(ctx, int64(11), int64(1), fixedNow, 2*time.Second).Return(view, nil)
			},
		},
		{
			name: "Second completion rejected",
			prepareMock: func() {
				repo.EXPECT().Complete(ctx, int64(11), int64(1), fixedNow, 2*time.Second).Return(nil, domain.ErrAlreadyCompleted)
			},
			expectedError: domain.ErrAlreadyCompleted,
		},
		{
			name: "Too early",
			prepareMock: func() {
				repo.EXPECT().Complete(ctx, int64(11), int64(1), fixedNow, 2*time.Second).Return(nil, domain.ErrViewTooEarly)
			},
			expectedError: domain.ErrViewTooEarly,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				repo.EXPECT().Complete(ctx, int64(11), int64(1), fixedNow, 2*time.Second).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.CompleteView(ctx, 11, 1)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Completed)
			}
		})
	}
}
