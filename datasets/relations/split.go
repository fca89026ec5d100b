package relations

import (
	"math/rand"

	"github.com/pkg/errors"
)

// DefaultSeed seeds the development batch shuffle
const DefaultSeed = 1312

// ErrBadRatio is returned for a dev ratio outside [0, 1)
var ErrBadRatio = errors.New("dev ratio must be in [0, 1)")

// DevSplit is the result of Split
type DevSplit struct {
	// Training examples, in file order
	Positive []Example
	Negative []Example

	// Shuffled development batch with its parallel qids and labels
	Dev       []Example
	DevQIDs   []QID
	DevLabels []float64

	NumPositiveDev int
	NumNegativeDev int
}

// Split holds out the last floor(ratio*len) positive and negative examples as the
// development batch. The batch is labeled 1.0 for positives and 0.0 for negatives,
// and shuffled together with its qids and labels using one permutation.
func Split(pos, neg []Example, ratio float64, seed int64) (s DevSplit, err error) {
	if !(ratio >= 0 && ratio < 1) {
		return s, errors.Wrapf(ErrBadRatio, "got %v", ratio)
	}
	numPos, numNeg := len(pos), len(neg)
	s.NumPositiveDev = int(float64(numPos) * ratio)
	s.NumNegativeDev = int(float64(numNeg) * ratio)

	trainPos, trainNeg := numPos-s.NumPositiveDev, numNeg-s.NumNegativeDev
	s.Positive = pos[:trainPos:trainPos]
	s.Negative = neg[:trainNeg:trainNeg]

	n := s.NumPositiveDev + s.NumNegativeDev
	s.Dev = make([]Example, 0, n)
	s.Dev = append(s.Dev, pos[trainPos:]...)
	s.Dev = append(s.Dev, neg[trainNeg:]...)

	s.DevQIDs = make([]QID, n)
	s.DevLabels = make([]float64, n)
	for i := range s.Dev {
		s.DevQIDs[i] = s.Dev[i].Question.QID()
		if i < s.NumPositiveDev {
			s.DevLabels[i] = 1.0
		}
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) {
		s.Dev[i], s.Dev[j] = s.Dev[j], s.Dev[i]
		s.DevQIDs[i], s.DevQIDs[j] = s.DevQIDs[j], s.DevQIDs[i]
		s.DevLabels[i], s.DevLabels[j] = s.DevLabels[j], s.DevLabels[i]
	})
	return s, nil
}
