package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/signcraft/sheet-pricing-service/internal/mocks"
	"github.com/signcraft/sheet-pricing-service/internal/repository"
	"github.com/signcraft/sheet-pricing-service/internal/service"
)

func setupMaterialsRouter(repo repository.MaterialsRepositoryInterface) *gin.Engine {
	quotes := service.NewQuoteService(service.WithMaterials(repo))
	cfg := DefaultRouterConfig()
	cfg.QuoteService = quotes
	cfg.MaterialsService = service.NewMaterialsService(repo, quotes)
	return NewRouter(NewHealthHandler(), cfg)
}

func testMaterial() *repository.MaterialConfig {
	return &repository.MaterialConfig{
		MaterialID: "acm-3mm",
		Name:       "3mm ACM",
		Sheet:      model.SheetSpec{Width: 48, Height: 96, BaseCost: 20},
		Version:    1,
	}
}

func TestMaterialsHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockMaterialsRepositoryInterface)
		expectedStatus int
		mustContain    []string
	}{
		{
			name: "existing material",
			setupMock: func(repo *mocks.MockMaterialsRepositoryInterface) {
				repo.On("GetByMaterialID", mock.Anything, "acm-3mm").Return(testMaterial(), nil)
			},
			expectedStatus: http.StatusOK,
			mustContain:    []string{"3mm ACM", `"base_cost":20`},
		},
		{
			name: "missing material",
			setupMock: func(repo *mocks.MockMaterialsRepositoryInterface) {
				repo.On("GetByMaterialID", mock.Anything, "acm-3mm").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			mustContain:    []string{"not_found"},
		},
		{
			name: "repository error",
			setupMock: func(repo *mocks.MockMaterialsRepositoryInterface) {
				repo.On("GetByMaterialID", mock.Anything, "acm-3mm").Return(nil, errors.New("connection lost"))
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{"internal_error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMaterialsRepositoryInterface)
			tt.setupMock(repo)
			router := setupMaterialsRouter(repo)

			req := httptest.NewRequest(http.MethodGet, "/api/materials/acm-3mm", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMaterialsHandler_List(t *testing.T) {
	repo := new(mocks.MockMaterialsRepositoryInterface)
	repo.On("List", mock.Anything, 100).Return([]repository.MaterialConfig{*testMaterial()}, nil)
	router := setupMaterialsRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acm-3mm")
	repo.AssertExpectations(t)
}

func TestMaterialsHandler_List_InvalidLimit(t *testing.T) {
	repo := new(mocks.MockMaterialsRepositoryInterface)
	router := setupMaterialsRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/materials?limit=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestMaterialsHandler_Upsert(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockMaterialsRepositoryInterface)
		expectedStatus int
	}{
		{
			name: "valid material",
			body: `{"name": "3mm ACM", "sheet": {"width": 48, "height": 96, "base_cost": 20}}`,
			setupMock: func(repo *mocks.MockMaterialsRepositoryInterface) {
				repo.On("Upsert", mock.Anything, "acm-3mm", mock.Anything).Return(testMaterial(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing name",
			body:           `{"sheet": {"width": 48, "height": 96, "base_cost": 20}}`,
			setupMock:      func(repo *mocks.MockMaterialsRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid sheet",
			body:           `{"name": "3mm ACM", "sheet": {"width": -1, "height": 96, "base_cost": 20}}`,
			setupMock:      func(repo *mocks.MockMaterialsRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid policy",
			body:           `{"name": "3mm ACM", "sheet": {"width": 48, "height": 96, "base_cost": 20}, "charging_policy": {"rounding_mode": "banker"}}`,
			setupMock:      func(repo *mocks.MockMaterialsRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMaterialsRepositoryInterface)
			tt.setupMock(repo)
			router := setupMaterialsRouter(repo)

			req := httptest.NewRequest(http.MethodPut, "/api/materials/acm-3mm", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			repo.AssertExpectations(t)
		})
	}
}

func TestMaterialsHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		deleted        bool
		expectedStatus int
	}{
		{name: "existing material deleted", deleted: true, expectedStatus: http.StatusOK},
		{name: "missing material", deleted: false, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMaterialsRepositoryInterface)
			repo.On("Delete", mock.Anything, "acm-3mm").Return(tt.deleted, nil)
			router := setupMaterialsRouter(repo)

			req := httptest.NewRequest(http.MethodDelete, "/api/materials/acm-3mm", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			repo.AssertExpectations(t)
		})
	}
}
