package product

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
	getVendorProducts(ctx context.Context, vendorID int64) ([]*Product, error)
	createProduct(ctx context.Context, newProduct *CreateProductRequest) (*Product, error)
}

type middleware interface {
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
	VendorSession(h handlerutils.APIHandler) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(productService servicer, middleware middleware) *handler {
	return &handler{
		service:    productService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/productos",
		h.middleware.ErrorHandler(
			h.middleware.VendorSession(
				h.getVendorProductsHandler,
			),
		),
	)

	router.Post(
		"/productos",
		h.middleware.ErrorHandler(h.createProductHandler),
	)
}

func (h *handler) getVendorProductsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	queryItems, err := getVendorQuery(r)
	if err != nil {
		return err
	}

	products, err := h.service.getVendorProducts(ctx, queryItems.VendorID)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		map[string]any{
			"productos": products,
		},
	)
}

func (h *handler) createProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()
	defer r.Body.Close()

	body, err := handlerutils.ParseJSONBody(r)
	if err != nil {
		return err
	}

	nombre, err := handlerutils.RequireField(
		body,
		"nombre",
		"El nombre del producto es obligatorio.",
	)
	if err != nil {
		return err
	}

	precio, err := handlerutils.RequireIntField(
		body,
		"precio",
		"El precio del producto es obligatorio y debe ser numérico.",
	)
	if err != nil {
		return err
	}

	stock, err := handlerutils.RequireIntField(
		body,
		"stock",
		"El stock del producto es obligatorio y debe ser numérico.",
	)
	if err != nil {
		return err
	}

	vendorID, err := handlerutils.RequireIntField(
		body,
		"vendedor_id",
		"El vendedor_id es obligatorio.",
	)
	if err != nil {
		return err
	}

	newProduct := &CreateProductRequest{
		Nombre:      nombre,
		Descripcion: handlerutils.OptionalField(body, "descripcion"),
		Precio:      precio,
		Stock:       stock,
		VendorID:    vendorID,
	}

	product, err := h.service.createProduct(ctx, newProduct)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		map[string]any{
			"message":  "Producto creado correctamente.",
			"producto": product,
		},
	)
}

// getVendorQuery reads vendedor_id from the URL query. Anything that does
// not parse as a positive integer fails validation before the store is ever
// touched.
func getVendorQuery(r *http.Request) (*ListProductsRequestQuery, error) {
	query := new(ListProductsRequestQuery)

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
