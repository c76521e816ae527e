package product

// Product is an item for sale, owned by exactly one vendor. Precio and
// stock are whole integers (minor currency units); decimal rendering is the
// storefront's problem.
type Product struct {
	ProductID   int64   `json:"id_producto"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      int64   `json:"precio"`
	Stock       int64   `json:"stock"`
	VendorID    int64   `json:"vendedor_id"`
}
