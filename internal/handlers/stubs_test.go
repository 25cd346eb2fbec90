package handlers

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
)

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	errorWriteCalled bool
	errorWriteStatus int
	errorWriteCode   string
	errorWriteMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.errorWriteCalled = true
	s.errorWriteStatus = status
	s.errorWriteCode = code
	s.errorWriteMsg = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

type stubSeedService struct {
	called bool
	result dto.SeedResult
	err    error
}

func (s *stubSeedService) Initialize(context.Context) (dto.SeedResult, error) {
	s.called = true
	return s.result, s.err
}

type stubTransactionService struct {
	lastArgs  dto.ListProductsArgs
	lastMonth int
	calls     int

	page     dto.ProductPage
	stats    dto.StatisticsResult
	bars     []dto.BarChartItem
	pies     []dto.CategoryCount
	combined dto.CombinedDataResult
	err      error
}

func (s *stubTransactionService) ListProducts(_ context.Context, args dto.ListProductsArgs) (dto.ProductPage, error) {
	s.calls++
	s.lastArgs = args
	return s.page, s.err
}

func (s *stubTransactionService) Statistics(_ context.Context, month int) (dto.StatisticsResult, error) {
	s.calls++
	s.lastMonth = month
	return s.stats, s.err
}

func (s *stubTransactionService) BarChart(_ context.Context, month int) ([]dto.BarChartItem, error) {
	s.calls++
	s.lastMonth = month
	return s.bars, s.err
}

func (s *stubTransactionService) PieChart(_ context.Context, month int) ([]dto.CategoryCount, error) {
	s.calls++
	s.lastMonth = month
	return s.pies, s.err
}

func (s *stubTransactionService) CombinedData(_ context.Context, month int) (dto.CombinedDataResult, error) {
	s.calls++
	s.lastMonth = month
	return s.combined, s.err
}
