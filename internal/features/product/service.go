package product

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/Neurokami/proyecto-infra/internal/servererrors"
)

type Storer interface {
	findAllByVendor(ctx context.Context, vendorID int64) ([]*Product, error)
	createOne(ctx context.Context, newProduct *CreateProductRequest) (*Product, error)
}

type vendorServicer interface {
	Exists(ctx context.Context, vendorID int64) (bool, error)
}

type service struct {
	store         Storer
	vendorService vendorServicer
}

func NewService(store Storer, vendorService vendorServicer) *service {
	return &service{
		store:         store,
		vendorService: vendorService,
	}
}

func (s *service) getVendorProducts(ctx context.Context, vendorID int64) ([]*Product, error) {
	return s.store.findAllByVendor(ctx, vendorID)
}

// createProduct validates value ranges and vendor ownership before touching
// the productos table. The vendor existence check is explicit; a foreign key
// violation is never the signal for a missing vendor.
func (s *service) createProduct(ctx context.Context, newProduct *CreateProductRequest) (*Product, error) {
	if newProduct.Precio < 0 {
		return nil, servererrors.New(
			http.StatusUnprocessableEntity,
			"El precio no puede ser negativo.",
			nil,
		)
	}

	if newProduct.Stock < 0 {
		return nil, servererrors.New(
			http.StatusUnprocessableEntity,
			"El stock no puede ser negativo.",
			nil,
		)
	}

	exists, err := s.vendorService.Exists(ctx, newProduct.VendorID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, servererrors.New(
			http.StatusNotFound,
			servererrors.ErrVendorMissing.Error(),
			nil,
		)
	}

	created, err := s.store.createOne(ctx, newProduct)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, servererrors.Wrap(
			http.StatusInternalServerError,
			"Producto creado pero no se pudo recuperar la información.",
			err,
		)

	case err != nil:
		return nil, servererrors.Wrap(
			http.StatusInternalServerError,
			"No se pudo crear el producto.",
			err,
		)
	}

	return created, nil
}
