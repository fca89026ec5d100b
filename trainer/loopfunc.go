package trainer

import "math/rand"

import "go.uber.org/zap"

// NewLoopFunc returns the training loop. Every epoch re-learns all units in a shuffled
// order. A change is undone when it lowers the success, or when it keeps the success
// but grows the unit. The loop ends after epochs epochs, or earlier when an epoch ends
// in an already visited state without improving. It returns the final success.
func NewLoopFunc(net Network, epochs int, rng *rand.Rand, log *zap.Logger,
	evaluate func() (int, [32]byte), trainUnit func(unit int) (undo func())) func() int {

	if log == nil {
		log = zap.NewNop()
	}
	return func() int {
		var success, state = evaluate()
		log.Info("initial evaluation", zap.Int("success", success))

		var visited = map[[32]byte]struct{}{state: {}}
		for epoch := 1; epoch <= epochs; epoch++ {
			var start = success
			var kept, undone int
			for _, unit := range rng.Perm(net.Len()) {
				before := net.GetHashtron(unit).LenQ()
				undo := trainUnit(unit)
				if undo == nil {
					continue
				}
				thisSuccess, thisState := evaluate()
				after := net.GetHashtron(unit).LenQ()
				if thisSuccess < success || (thisSuccess == success && before > 0 && after > before) {
					undo()
					undone++
					continue
				}
				kept++
				success, state = thisSuccess, thisState
			}
			log.Info("epoch done",
				zap.Int("epoch", epoch),
				zap.Int("success", success),
				zap.Int("kept", kept),
				zap.Int("undone", undone),
			)
			if _, ok := visited[state]; ok && success <= start {
				log.Info("training stuck in local minimum, stopping", zap.Int("epoch", epoch))
				break
			}
			visited[state] = struct{}{}
		}
		return success
	}
}
