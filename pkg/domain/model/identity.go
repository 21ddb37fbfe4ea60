package model

// Identity is the tracker account that owns the access token
type Identity struct {
	ID       int
	Username string
}
