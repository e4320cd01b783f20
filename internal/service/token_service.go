package service

type TokenService interface {
	// Issue signs a bearer token embedding the username.
	Issue(username string) (string, error)
	// Parse verifies signature and expiry and returns the embedded username.
	Parse(token string) (string, error)
}
