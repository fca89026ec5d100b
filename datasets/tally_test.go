package datasets

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	var tally Tally
	tally.Init()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tally.AddVote(1, true, 1)
			tally.AddVote(2, i%2 == 0, 1)
			tally.AddVote(3, false, 2)
			tally.AddVote(4, true, 0)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, tally.Len())
	set := tally.Dataset()
	assert.Equal(t, Dataset{1: true, 3: false}, set)

	tally.Free()
	assert.Equal(t, 0, tally.Len())
}

func TestBalance(t *testing.T) {
	pos, neg := Balance(10, 100)
	assert.Equal(t, int64(10), pos)
	assert.Equal(t, int64(1), neg)

	pos, neg = Balance(30, 10)
	assert.Equal(t, int64(1), pos)
	assert.Equal(t, int64(3), neg)

	pos, neg = Balance(0, 10)
	assert.Equal(t, int64(1), pos)
	assert.Equal(t, int64(1), neg)
}
