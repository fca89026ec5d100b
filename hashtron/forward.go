package hashtron

import "github.com/neurlang/relscorer/hash"

// Forward returns the learned bit for the feature, optionally negated
func (h Hashtron) Forward(feature uint32, negate bool) bool {
	if h.modulo == 0 {
		return negate
	}
	cell := hash.Hash(feature, h.salt, h.modulo)
	bit := h.table[cell/8]&(1<<(cell%8)) != 0
	return bit != negate
}
