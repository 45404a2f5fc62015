package id

import "github.com/google/uuid"

// Generator creates correlation ids for outgoing requests.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// GeneratorFunc adapts a plain function, e.g. a fixed sequence in tests.
type GeneratorFunc func() string

func (f GeneratorFunc) NewID() string {
	return f()
}
