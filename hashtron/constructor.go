package hashtron

import "sync"

import "github.com/jbarham/primegen"
import "github.com/neurlang/quaternary"

import "github.com/neurlang/relscorer/hash"

// tableFactor is the number of table cells reserved per learned feature
const tableFactor = 8

// attempts is the number of salts tried when learning a table
const attempts = 4

// New creates an untrained hashtron, which answers false for every feature
func New(salt uint32) *Hashtron {
	return &Hashtron{salt: salt}
}

// Learn builds a hashtron which maps every feature of the dataset to its value.
// Salts salt, salt+1, ... are tried and the table with the fewest conflicts wins.
// An empty dataset gives an untrained hashtron.
func Learn(d map[uint32]bool, salt uint32) *Hashtron {
	if len(d) == 0 {
		return New(salt)
	}
	modulo := PrimeAtLeast(uint64(tableFactor*len(d)) + 1)

	var best *Hashtron
	var bestConflicts = -1
	for a := uint32(0); a < attempts; a++ {
		h, conflicts := learnSalt(d, salt+a, modulo)
		if bestConflicts < 0 || conflicts < bestConflicts {
			best, bestConflicts = h, conflicts
		}
		if conflicts == 0 {
			break
		}
	}
	best.quaternary = quaternary.Make(d)
	return best
}

func learnSalt(d map[uint32]bool, salt, modulo uint32) (*Hashtron, int) {
	var votes = make(map[uint32]int32)
	var seen = make(map[uint32]byte)
	var conflicts int
	for feature, value := range d {
		cell := hash.Hash(feature, salt, modulo)
		var bit byte = 1
		if value {
			votes[cell]++
			bit = 2
		} else {
			votes[cell]--
		}
		if seen[cell]|bit == 3 && seen[cell] != 3 {
			conflicts++
		}
		seen[cell] |= bit
	}
	h := &Hashtron{
		salt:   salt,
		modulo: modulo,
		table:  make([]byte, (modulo+7)/8),
	}
	for cell, v := range votes {
		if v > 0 {
			h.table[cell/8] |= 1 << (cell % 8)
		}
	}
	return h, conflicts
}

var primes struct {
	sync.Mutex
	found map[uint64]uint32
}

// PrimeAtLeast returns the smallest prime greater than or equal to n
func PrimeAtLeast(n uint64) uint32 {
	primes.Lock()
	defer primes.Unlock()
	if p, ok := primes.found[n]; ok {
		return p
	}
	if primes.found == nil {
		primes.found = make(map[uint64]uint32)
	}
	pg := primegen.New()
	p := pg.Next()
	for p < n {
		p = pg.Next()
	}
	primes.found[n] = uint32(p)
	return uint32(p)
}
