package ads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/internal/dto"
	"github.com/GlebRadaev/adrewards/pkg/auth"
)

func NewMock(t *testing.T) (*AdsHandler, *MockCatalogService, *MockEarningService) {
	ctrl := gomock.NewController(t)
	catalog := NewMockCatalogService(ctrl)
	earning := NewMockEarningService(ctrl)
	return New(catalog, earning), catalog, earning
}

func withParam(r *http.Request, accountID int64, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), auth.AccountIDKey, accountID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestListAds(t *testing.T) {
	handler, catalog, _ := NewMock(t)

	t.Run("Active ads", func(t *testing.T) {
		catalog.EXPECT().ListActive(gomock.Any()).Return([]domain.Ad{
			{ID: 1, Title: "Video", Type: domain.AdTypeVideo, DurationSeconds: 30, Reward: decimal.NewFromInt(5), IsActive: true},
		}, nil)

		rr := httptest.NewRecorder()
		handler.ListAds(rr, httptest.NewRequest(http.MethodGet, "/api/ads", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var body []dto.AdResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Len(t, body, 1)
		assert.Equal(t, "5.00", body[0].Reward)
	})

	t.Run("Empty catalog is an empty list", func(t *testing.T) {
		catalog.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.ListAds(rr, httptest.NewRequest(http.MethodGet, "/api/ads", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Storage failure", func(t *testing.T) {
		catalog.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		handler.ListAds(rr, httptest.NewRequest(http.MethodGet, "/api/ads", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestStartView(t *testing.T) {
	handler, catalog, earning := NewMock(t)
	ad := &domain.Ad{ID: 2, Type: domain.AdTypeBanner, DurationSeconds: 10, Reward: decimal.NewFromInt(2), IsActive: true}
	created := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		adID         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "View started",
			adID: "2",
			prepareMock: func() {
				catalog.EXPECT().GetActive(gomock.Any(), int64(2)).Return(ad, nil)
				earning.EXPECT().StartView(gomock.Any(), int64(9), int64(2)).Return(&domain.AdView{
					ID: 100, AccountID: 9, AdID: 2, Reward: ad.Reward, DurationSeconds: 10, CreatedAt: created,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed id",
			adID:         "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Inactive or missing ad",
			adID: "3",
			prepareMock: func() {
				catalog.EXPECT().GetActive(gomock.Any(), int64(3)).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Inactive account",
			adID: "2",
			prepareMock: func() {
				catalog.EXPECT().GetActive(gomock.Any(), int64(2)).Return(ad, nil)
				earning.EXPECT().StartView(gomock.Any(), int64(9), int64(2)).Return(nil, domain.ErrUnauthorized)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withParam(httptest.NewRequest(http.MethodPost, "/api/ads/"+tt.adID+"/start", nil), 9, "adID", tt.adID)
			rr := httptest.NewRecorder()
			handler.StartView(rr, r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.ViewResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, dto.ViewResponseDTO{
					ID: 100, AdID: 2, Reward: "2.00", DurationSeconds: 10, CreatedAt: created,
				}, body)
			}
		})
	}
}

func TestCompleteView(t *testing.T) {
	handler, _, earning := NewMock(t)
	completedAt := time.Date(2024, 5, 3, 10, 0, 31, 0, time.UTC)

	tests := []struct {
		name         string
		viewID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Reward credited",
			viewID: "100",
			prepareMock: func() {
				earning.EXPECT().CompleteView(gomock.Any(), int64(100), int64(9)).Return(&domain.AdView{
					ID: 100, AccountID: 9, AdID: 1, Completed: true, Reward: decimal.NewFromInt(5), CompletedAt: &completedAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed id",
			viewID:       "-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Someone else's view",
			viewID: "100",
			prepareMock: func() {
				earning.EXPECT().CompleteView(gomock.Any(), int64(100), int64(9)).Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Second completion",
			viewID: "100",
			prepareMock: func() {
				earning.EXPECT().CompleteView(gomock.Any(), int64(100), int64(9)).Return(nil, domain.ErrAlreadyCompleted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Too early",
			viewID: "100",
			prepareMock: func() {
				earning.EXPECT().CompleteView(gomock.Any(), int64(100), int64(9)).Return(nil, domain.ErrViewTooEarly)
			},
			expectedCode: http.StatusTooEarly,
		},
		{
			name:   "Missing view",
			viewID: "101",
			prepareMock: func() {
				earning.EXPECT().CompleteView(gomock.Any(), int64(101), int64(9)).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withParam(httptest.NewRequest(http.MethodPost, "/api/ads/views/"+tt.viewID+"/complete", nil), 9, "viewID", tt.viewID)
			rr := httptest.NewRecorder()
			handler.CompleteView(rr, r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ViewResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.True(t, body.Completed)
				assert.Equal(t, "5.00", body.Reward)
				if assert.NotNil(t, body.CompletedAt) {
					assert.True(t, completedAt.Equal(*body.CompletedAt))
				}
			}
		})
	}
}
