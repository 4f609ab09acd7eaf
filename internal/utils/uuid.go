package utils

import "github.com/google/uuid"

// UUIDGenerator issues the 36 character identifiers stored in uuid columns
// of sync records, transmissions and repaired entities. It prefers time
// ordered v7 values and falls back to a random v4 when v7 generation fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
