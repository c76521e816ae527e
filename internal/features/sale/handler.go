package sale

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"

	"github.com/Neurokami/proyecto-infra/internal/handlerutils"
	"github.com/Neurokami/proyecto-infra/internal/servererrors"
	"github.com/Neurokami/proyecto-infra/internal/validate"
)

type servicer interface {
	getVendorSales(ctx context.Context, vendorID int64) ([]*Sale, error)
}

type middleware interface {
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
	VendorSession(h handlerutils.APIHandler) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(saleService servicer, middleware middleware) *handler {
	return &handler{
		service:    saleService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/ventas",
		h.middleware.ErrorHandler(
			h.middleware.VendorSession(
				h.getVendorSalesHandler,
			),
		),
	)
}

func (h *handler) getVendorSalesHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	queryItems, err := getVendorQuery(r)
	if err != nil {
		return err
	}

	sales, err := h.service.getVendorSales(ctx, queryItems.VendorID)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		map[string]any{
			"ventas": sales,
		},
	)
}

func getVendorQuery(r *http.Request) (*ListSalesRequestQuery, error) {
	query := new(ListSalesRequestQuery)

	vendorID, err := strconv.ParseInt(
		strings.TrimSpace(r.URL.Query().Get("vendedor_id")),
		10,
		64,
	)
	if err == nil {
		query.VendorID = vendorID
	}

	if err := validate.StructFields(query); err != nil {
		return nil, servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrInvalidVendorParam.Error(),
			nil,
		)
	}

	return query, nil
}
