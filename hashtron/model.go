// Package hashtron implements a hashtron, a single learned unit of the relation scorer.
// A hashtron hashes its input feature into a prime sized bit table and returns the
// learned bit found there.
package hashtron

// Hashtron represents individual hashtron (classifier) in memory
type Hashtron struct {
	salt   uint32
	modulo uint32
	table  []byte

	quaternary []byte
}

// Salt gets the salt used to hash features into the table
func (h Hashtron) Salt() uint32 {
	return h.salt
}

// Modulo gets the number of table cells
func (h Hashtron) Modulo() uint32 {
	return h.modulo
}

// Len gets the number of table cells that are set
func (h Hashtron) Len() (o int) {
	for _, b := range h.table {
		for ; b != 0; b &= b - 1 {
			o++
		}
	}
	return
}

// LenQ gets the size of learned data (size of quaternary filter)
func (h Hashtron) LenQ() int {
	return len(h.quaternary)
}

// Trained reports whether the hashtron holds a learned table
func (h Hashtron) Trained() bool {
	return h.modulo != 0
}
