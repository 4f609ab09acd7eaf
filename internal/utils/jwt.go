package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating session token")
	ErrInvalidSubject     = errors.New("session token subject is not a server id")
	ErrNoPeerClaim        = errors.New("session token has no peer claim")
)

// GenerateJWTToken signs an HS256 session token for the peer identified by
// serverID and peerUUID, valid for tokenDuration.
func GenerateJWTToken(issuer string, serverID int64, peerUUID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" || tokenDuration == 0 || serverID <= 0 || peerUUID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(serverID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Peer: peerUUID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		ServerID:     serverID,
		PeerUUID:     peerUUID,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken checks signature, issuer and expiry of
// tokenString and returns the peer it names. Only HS256 is accepted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	serverID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || serverID <= 0 {
		return models.Token{}, fmt.Errorf("%w: %q", ErrInvalidSubject, claims.Subject)
	}
	if claims.Peer == "" {
		return models.Token{}, ErrNoPeerClaim
	}

	token := models.Token{
		SignedString: tokenString,
		ServerID:     serverID,
		PeerUUID:     claims.Peer,
	}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}
	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
