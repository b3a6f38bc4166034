package utils

import "github.com/google/uuid"

// maxTraceIDLength bounds trace ids accepted from clients.
const maxTraceIDLength = 128

// TraceIDGenerator issues request trace ids. Generated ids are UUIDv7 so
// that log entries sort by creation time.
type TraceIDGenerator struct{}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 if the clock
// source fails.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Resolve returns incoming when it is a usable trace id and a fresh one
// otherwise. Usable ids are non-empty visible ASCII of bounded length, so
// they are safe to log and to forward upstream as a header.
func (g *TraceIDGenerator) Resolve(incoming string) string {
	if validTraceID(incoming) {
		return incoming
	}
	return g.Generate()
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
