package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/siteplan-view/internal/models"
	"github.com/magabrotheeeer/siteplan-view/internal/plans"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Store(ctx context.Context, siteID int64, raw models.RawPlan) (models.SitePlan, error) {
	args := m.Called(ctx, siteID, raw)
	return args.Get(0).(models.SitePlan), args.Error(1)
}

func TestStoreHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assembler := plans.NewAssembler(time.UTC, nil)

	tests := []struct {
		name           string
		siteID         string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "success",
			siteID: "7",
			body:   `{"product_slug": "business-bundle", "id": 1008}`,
			setupMock: func(m *MockService) {
				m.On("Store", mock.Anything, int64(7), mock.MatchedBy(func(raw models.RawPlan) bool {
					return raw.ProductSlug != nil && *raw.ProductSlug == "business-bundle"
				})).Return(assembler.CreateSitePlanObject(&models.RawPlan{ID: float64(1008)}), nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":1008`,
		},
		{
			name:           "invalid site id",
			siteID:         "seven",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `failed to decode site id from url`,
		},
		{
			name:           "invalid body",
			siteID:         "7",
			body:           `[`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "null plan",
			siteID:         "7",
			body:           `null`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Plan is a required field`,
		},
		{
			name:           "negative site id",
			siteID:         "-1",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field SiteID must be greater than 0`,
		},
		{
			name:   "service error",
			siteID: "7",
			body:   `{}`,
			setupMock: func(m *MockService) {
				m.On("Store", mock.Anything, int64(7), mock.Anything).
					Return(models.SitePlan{}, errors.New("redis down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not store site plan`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/sites/"+tt.siteID+"/plan", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("siteID", tt.siteID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			New(logger, service).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			service.AssertExpectations(t)
		})
	}
}
