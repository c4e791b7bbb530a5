package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carwash-booking/internal/dto/request"
	"carwash-booking/internal/dto/response"
	"carwash-booking/internal/usecase"
	"carwash-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRedemptionService struct {
	scanErr    error
	scanResult *response.ScanResultResponse
}

func (s *stubRedemptionService) ScanBarcode(_ context.Context, _ uuid.UUID, _ *request.ScanBarcodeRequest) (*response.ScanResultResponse, error) {
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	return s.scanResult, nil
}

func (s *stubRedemptionService) ListWashes(_ context.Context, _ uuid.UUID, _, _ int) (*response.PaginatedResponse[response.WashResponse], error) {
	return &response.PaginatedResponse[response.WashResponse]{}, nil
}

func (s *stubRedemptionService) ListBranchWashes(_ context.Context, _ uuid.UUID, _, _ int) (*response.PaginatedResponse[response.WashResponse], error) {
	return response.NewPaginatedResponse([]response.WashResponse{}, 1, 10, 0), nil
}

func (s *stubRedemptionService) RateWash(_ context.Context, _ uuid.UUID, _ *request.CreateFeedbackRequest) error {
	return nil
}

func scanRequest(t *testing.T) *http.Request {
	t.Helper()

	body := `{"barcode":"A1B2C3D4E5F6","branch_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/wash/scan-barcode", strings.NewReader(body))
	ctx := utils.SetUserContext(req.Context(), uuid.New(), "operator")
	return req.WithContext(ctx)
}

func TestScanBarcodeStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"unknown barcode", usecase.ErrBarcodeNotFound, http.StatusNotFound},
		{"expired package", usecase.ErrPackageExpired, http.StatusBadRequest},
		{"exhausted package", usecase.ErrPackageExhausted, http.StatusBadRequest},
		{"unknown branch", usecase.ErrBranchNotFound, http.StatusNotFound},
		{"validation", usecase.ErrValidation, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewWashHandler(&stubRedemptionService{scanErr: tt.serviceErr}, zap.NewNop())

			rec := httptest.NewRecorder()
			handler.ScanBarcode(rec, scanRequest(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestScanBarcodeSuccess(t *testing.T) {
	handler := NewWashHandler(&stubRedemptionService{
		scanResult: &response.ScanResultResponse{WashesLeft: 4, Status: "active"},
	}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ScanBarcode(rec, scanRequest(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"washes_left":4`)
}

func TestScanBarcodeRequiresAuth(t *testing.T) {
	handler := NewWashHandler(&stubRedemptionService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/wash/scan-barcode", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ScanBarcode(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
