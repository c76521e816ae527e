package sale

// Sale is one qualifying sale row for a vendor: total comes straight from
// the ventas table (never recomputed from cart lines) and Items counts only
// the vendor's own distinct cart lines within the sale.
type Sale struct {
	SaleID        int64  `json:"id_venta"`
	Fecha         string `json:"fecha"`
	Total         int64  `json:"total"`
	ClienteNombre string `json:"cliente_nombre"`
	Items         int64  `json:"items"`
}
