package parallel

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
)

// Fingerprint collects one uint16 per index from many goroutines and hashes
// them in index order, so equal predictions give an equal sum whatever the schedule.
type Fingerprint struct {
	mut    sync.Mutex
	values []uint16
	set    []bool
}

// NewFingerprint creates a fingerprint of n values
func NewFingerprint(n int) *Fingerprint {
	return &Fingerprint{
		values: make([]uint16, n),
		set:    make([]bool, n),
	}
}

// MustPutUint16 stores the value at index n. Writing the same index twice panics.
func (f *Fingerprint) MustPutUint16(n int, value uint16) {
	f.mut.Lock()
	defer f.mut.Unlock()
	if f.set[n] {
		panic("duplicate write")
	}
	f.set[n] = true
	f.values[n] = value
}

// Sum hashes the values in index order. Indexes never written count as zero.
func (f *Fingerprint) Sum() (ret [32]byte) {
	f.mut.Lock()
	defer f.mut.Unlock()
	sha := sha256.New()
	var buf [2]byte
	for _, v := range f.values {
		binary.LittleEndian.PutUint16(buf[:], v)
		sha.Write(buf[:])
	}
	copy(ret[:], sha.Sum(nil))
	return
}
