package product

// Requests

type CreateProductRequest struct {
	Nombre      string
	Descripcion *string
	Precio      int64
	Stock       int64
	VendorID    int64
}

type ListProductsRequestQuery struct {
	VendorID int64 `validate:"required,gt=0"`
}
