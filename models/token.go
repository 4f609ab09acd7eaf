package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are carried by a peer session token. Subject holds the
// numeric server id and Peer the uuid of the same remote server, so a token
// stops working once the peer definition it was issued for is replaced.
type SessionClaims struct {
	jwt.RegisteredClaims
	Peer string `json:"peer"`
}

// Token is a peer session token issued by login and presented as a bearer
// token on ingest.
type Token struct {
	SignedString string
	ServerID     int64
	PeerUUID     string
	ExpiresAt    time.Time
}

func (t Token) String() string {
	return t.SignedString
}
