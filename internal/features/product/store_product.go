package product

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) findAllByVendor(ctx context.Context, vendorID int64) ([]*Product, error) {
	query := `SELECT id_producto, nombre, descripcion, precio, stock, vendedor_id
		FROM productos
		WHERE vendedor_id = $1
		ORDER BY id_producto DESC`

	rows, err := s.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get vendor products from product store: %w",
			err,
		)
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		var product Product
		err := rows.Scan(
			&product.ProductID,
			&product.Nombre,
			&product.Descripcion,
			&product.Precio,
			&product.Stock,
			&product.VendorID,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan product from product store: %w",
				err,
			)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(
			"failed to iterate vendor products in product store: %w",
			err,
		)
	}

	return products, nil
}

// createOne inserts and reads back the new row in a single statement; there
// is no window for a concurrent delete between insert and confirmation.
func (s *Store) createOne(ctx context.Context, newProduct *CreateProductRequest) (*Product, error) {
	query := `INSERT INTO productos (nombre, descripcion, precio, stock, vendedor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_producto, nombre, descripcion, precio, stock, vendedor_id`

	var product Product
	err := s.db.QueryRowContext(
		ctx,
		query,
		newProduct.Nombre,
		newProduct.Descripcion,
		newProduct.Precio,
		newProduct.Stock,
		newProduct.VendorID,
	).Scan(
		&product.ProductID,
		&product.Nombre,
		&product.Descripcion,
		&product.Precio,
		&product.Stock,
		&product.VendorID,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to insert new product in product store: %w",
			err,
		)
	}

	return &product, nil
}
