package models

// PeerCredentials is the login a peer presents to obtain a session token.
type PeerCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
