package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for object keys and
// trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ObjectKey builds "<folder>/<uuid><ext>". Leading and trailing slashes of
// folder are trimmed; ext is lower-cased.
func (g *UUIDGenerator) ObjectKey(folder, ext string) string {
	folder = strings.Trim(folder, "/")
	name := g.Generate() + strings.ToLower(ext)
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
