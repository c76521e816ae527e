package sale

// Requests

type ListSalesRequestQuery struct {
	VendorID int64 `validate:"required,gt=0"`
}
