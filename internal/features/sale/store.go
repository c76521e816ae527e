package sale

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const fechaLayout = "2006-01-02 15:04:05"

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

// findAllByVendor returns every sale with at least one cart line pointing at
// one of the vendor's products. The DISTINCT inside the count keeps items
// scoped to the vendor's own lines; a bare COUNT(*) would overcount on
// mixed-vendor sales.
func (s *Store) findAllByVendor(ctx context.Context, vendorID int64) ([]*Sale, error) {
	query := `SELECT
			v.id_venta,
			v.fecha,
			v.total,
			c.nombre AS cliente_nombre,
			COUNT(DISTINCT ca.id_carrito) AS items
		FROM ventas v
		INNER JOIN clientes c
			ON v.cliente_id = c.id_cliente
		INNER JOIN carritos ca
			ON ca.venta_id = v.id_venta
		INNER JOIN productos p
			ON ca.producto_id = p.id_producto
		WHERE p.vendedor_id = $1
		GROUP BY
			v.id_venta,
			v.fecha,
			v.total,
			c.nombre
		ORDER BY v.fecha DESC, v.id_venta DESC`

	rows, err := s.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get vendor sales from sale store: %w",
			err,
		)
	}
	defer rows.Close()

	sales := []*Sale{}
	for rows.Next() {
		var sale Sale
		var fecha time.Time
		err := rows.Scan(
			&sale.SaleID,
			&fecha,
			&sale.Total,
			&sale.ClienteNombre,
			&sale.Items,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan sale from sale store: %w",
				err,
			)
		}

		sale.Fecha = fecha.Format(fechaLayout)
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(
			"failed to iterate vendor sales in sale store: %w",
			err,
		)
	}

	return sales, nil
}
