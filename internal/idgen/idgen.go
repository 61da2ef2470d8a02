// Package idgen provides fixed-width observation identifier generators.
package idgen

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/rtreharne/fishdata/internal/domain"
	"github.com/rtreharne/fishdata/internal/ports"
)

// Width is the identifier length in characters.
const Width = 8

// alphabet is Crockford base32: digits and uppercase letters minus the
// ambiguous I, L, O and U.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ForMode returns the generator for an ID mode. Token generators draw from
// src, so seeded runs reproduce their identifiers.
func ForMode(mode domain.IDMode, src rand.Source) (ports.IDGenerator, error) {
	switch mode {
	case domain.IDToken:
		return NewToken(src), nil
	case domain.IDSequential:
		return NewSequential(), nil
	default:
		return nil, fmt.Errorf("unknown id mode %q", mode)
	}
}

// Token generates fixed-width random identifiers from a caller-supplied
// random source.
type Token struct {
	rng *rand.Rand
}

func NewToken(src rand.Source) *Token {
	return &Token{rng: rand.New(src)}
}

// Next returns an 8-character Crockford base32 token.
func (t *Token) Next() string {
	var buf [Width]byte
	for i := range buf {
		buf[i] = alphabet[t.rng.Intn(len(alphabet))]
	}
	return string(buf[:])
}

// Sequential generates zero-padded identifiers counting up from 1.
type Sequential struct {
	next uint64
}

func NewSequential() *Sequential {
	return &Sequential{next: 1}
}

func (s *Sequential) Next() string {
	id := fmt.Sprintf("%0*d", Width, s.next)
	s.next++
	return id
}
