// Package ident generates document identifiers of the form "<prefix>-<n>".
package ident

import (
	"fmt"
	"math/rand/v2"
)

// Prefixes distinguishing entity classes in generated identifiers.
const (
	MessagePrefix      = "msg"
	NotificationPrefix = "notif"
)

// maxRandom bounds the numeric suffix: n is drawn uniformly from
// [1, maxRandom]. Collisions are possible at this size; existing stored
// documents use the same space, so the bound is part of the format contract.
const maxRandom = 100000

// Generator produces a new identifier for the given entity-class prefix.
// Implementations make no uniqueness guarantee.
type Generator interface {
	NewID(prefix string) string
}

// RandomGenerator draws the numeric suffix from math/rand.
type RandomGenerator struct{}

// NewGenerator returns the default random Generator.
func NewGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

var _ Generator = (*RandomGenerator)(nil)

func (*RandomGenerator) NewID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, rand.IntN(maxRandom)+1)
}
