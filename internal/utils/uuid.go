package utils

import "github.com/google/uuid"

// UUIDGenerator produces attempt ids that tie together the log lines of a
// single unlock attempt. Ids are time ordered so a log file sorts the same
// way the attempts were started.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7. When the clock source fails it falls back to a
// random UUIDv4, so an attempt always gets an id.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
