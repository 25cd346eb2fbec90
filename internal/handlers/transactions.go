package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/transaction-insights/internal/dto"
	"github.com/GregMSThompson/transaction-insights/internal/response"
	"github.com/GregMSThompson/transaction-insights/pkg/helpers"
	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

type seedService interface {
	Initialize(ctx context.Context) (dto.SeedResult, error)
}

type transactionService interface {
	ListProducts(ctx context.Context, args dto.ListProductsArgs) (dto.ProductPage, error)
	Statistics(ctx context.Context, month int) (dto.StatisticsResult, error)
	BarChart(ctx context.Context, month int) ([]dto.BarChartItem, error)
	PieChart(ctx context.Context, month int) ([]dto.CategoryCount, error)
	CombinedData(ctx context.Context, month int) (dto.CombinedDataResult, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	SeedSvc         seedService
	TransactionSvc  transactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		SeedSvc:         deps.SeedSvc,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/init", h.Initialize)
	r.Get("/products", h.ListProducts)
	r.Get("/statistics", h.Statistics)
	r.Get("/bar-chart", h.BarChart)
	r.Get("/pie-chart", h.PieChart)
	r.Get("/combined-data", h.CombinedData)
	return r
}

func (h *transactionHandlers) Initialize(w http.ResponseWriter, r *http.Request) {
	result, err := h.SeedSvc.Initialize(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *transactionHandlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	args, err := listProductsArgs(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	page, err := h.TransactionSvc.ListProducts(r.Context(), args)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, page)
}

func (h *transactionHandlers) Statistics(w http.ResponseWriter, r *http.Request) {
	month, ctx, err := monthParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	stats, err := h.TransactionSvc.Statistics(ctx, month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, stats)
}

func (h *transactionHandlers) BarChart(w http.ResponseWriter, r *http.Request) {
	month, ctx, err := monthParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	items, err := h.TransactionSvc.BarChart(ctx, month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, items)
}

func (h *transactionHandlers) PieChart(w http.ResponseWriter, r *http.Request) {
	month, ctx, err := monthParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	items, err := h.TransactionSvc.PieChart(ctx, month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, items)
}

func (h *transactionHandlers) CombinedData(w http.ResponseWriter, r *http.Request) {
	month, ctx, err := monthParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	data, err := h.TransactionSvc.CombinedData(ctx, month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, data)
}

// monthParam reads ?month (default March) and tags the request logger with it.
func monthParam(r *http.Request) (int, context.Context, error) {
	month, err := queryInt(r, "month", dto.DefaultMonth)
	if err != nil {
		return 0, r.Context(), err
	}
	_, ctx := logger.With(r.Context(), "month", month)
	return month, ctx, nil
}

func listProductsArgs(r *http.Request) (dto.ListProductsArgs, error) {
	var args dto.ListProductsArgs
	var err error

	if args.Page, err = queryInt(r, "page", dto.DefaultPage); err != nil {
		return args, err
	}
	if args.PerPage, err = queryInt(r, "perPage", dto.DefaultPerPage); err != nil {
		return args, err
	}
	if args.Month, err = queryInt(r, "month", dto.DefaultMonth); err != nil {
		return args, err
	}
	args.Search = helpers.NonEmpty(r.URL.Query().Get("search"))
	return args, nil
}
