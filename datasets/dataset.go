// Package datasets implements the feature datasets and vote tallies which units are learned from
package datasets

// Dataset maps a hashed feature to the bit a unit should answer for it
type Dataset map[uint32]bool

// Init allocates an empty dataset
func (d *Dataset) Init() {
	*d = make(map[uint32]bool)
}

// Balance reports the weights of positive and negative votes so that both
// classes carry the same total weight. Each weight is at least 1.
func Balance(positives, negatives int) (pos, neg int64) {
	pos, neg = 1, 1
	if positives == 0 || negatives == 0 {
		return
	}
	if negatives > positives {
		pos = int64((negatives + positives/2) / positives)
	} else {
		neg = int64((positives + negatives/2) / negatives)
	}
	return
}
