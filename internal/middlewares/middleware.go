package middlewares

type tokenManager interface {
	ValidateSessionToken(tokenStr string) (vendorID int64, err error)
}

type middleware struct {
	tokenManager tokenManager
}

func NewMiddleware(tokenManager tokenManager) *middleware {
	return &middleware{
		tokenManager: tokenManager,
	}
}
