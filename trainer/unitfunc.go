package trainer

import "math/rand"

import "github.com/neurlang/relscorer/datasets"
import "github.com/neurlang/relscorer/hashtron"

// Network is a set of trainable hashtrons
type Network interface {
	// Len returns the number of hashtrons which need to be trained inside the network
	Len() int

	// GetHashtron gets n-th hashtron pointer in the network
	GetHashtron(n int) *hashtron.Hashtron
}

// NewTrainUnitFunc returns a function which re-learns one unit of the network from the
// votes tallyFunc casts, with a fresh salt. It returns an undo closure restoring the
// previous unit, or nil when there was nothing to learn.
func NewTrainUnitFunc(net Network, rng *rand.Rand, tallyFunc func(unit int, t *datasets.Tally)) func(unit int) (undo func()) {
	return func(unit int) (undo func()) {
		var tally = new(datasets.Tally)
		tally.Init()
		defer tally.Free()

		tallyFunc(unit, tally)
		if tally.Len() == 0 {
			return nil
		}

		htron := hashtron.Learn(tally.Dataset(), rng.Uint32())

		ptr := net.GetHashtron(unit)
		backup := *ptr
		*ptr = *htron

		return func() {
			*ptr = backup
		}
	}
}
