package sale

import "context"

type Storer interface {
	findAllByVendor(ctx context.Context, vendorID int64) ([]*Sale, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

func (s *service) getVendorSales(ctx context.Context, vendorID int64) ([]*Sale, error) {
	return s.store.findAllByVendor(ctx, vendorID)
}
