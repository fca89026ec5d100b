package trainer

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neurlang/relscorer/datasets"
	"github.com/neurlang/relscorer/datasets/relations"
	"github.com/neurlang/relscorer/hashtron"
)

type fakeModel struct{ stored []string }

func (m *fakeModel) StoreModel(dir, name string) error {
	m.stored = append(m.stored, dir+"/"+name)
	return nil
}

type fakeLearner struct {
	pos, neg []relations.Example
	params   LearnParams
	err      error
}

func (l *fakeLearner) LearnRelationModel(pos, neg []relations.Example, params LearnParams) (Model, error) {
	l.pos, l.neg, l.params = pos, neg, params
	if l.err != nil {
		return nil, l.err
	}
	return &fakeModel{}, nil
}

func examples(t *testing.T, n int, rel string) (out []relations.Example) {
	for i := 0; i < n; i++ {
		q, err := relations.Tokenize("who wrote [m|x] number " + string(rune('a'+i%26)))
		require.NoError(t, err)
		out = append(out, relations.Example{Question: q, Relation: relations.NewRelation(rel)})
	}
	return
}

func TestDispatch(t *testing.T) {
	pos, neg := examples(t, 20, "p"), examples(t, 50, "n")
	l := &fakeLearner{}
	m, err := Dispatch(l, pos, neg, DispatchParams{
		DevRatio:    0.1,
		Seed:        relations.DefaultSeed,
		NumEpochs:   7,
		ExtendModel: "base",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Len(t, l.pos, 18)
	assert.Len(t, l.neg, 45)
	assert.Len(t, l.params.Dev, 7)
	assert.Len(t, l.params.DevQIDs, 7)
	assert.Len(t, l.params.DevLabels, 7)
	assert.Equal(t, 7, l.params.NumEpochs)
	assert.Equal(t, "base", l.params.ExtendModel)
	assert.Equal(t, pos[:18], l.pos)
}

func TestDispatchErrors(t *testing.T) {
	_, err := Dispatch(&fakeLearner{}, nil, nil, DispatchParams{DevRatio: 2}, nil)
	assert.True(t, errors.Is(err, relations.ErrBadRatio))

	boom := errors.New("boom")
	_, err = Dispatch(&fakeLearner{err: boom}, nil, nil, DispatchParams{DevRatio: 0.1}, nil)
	assert.True(t, errors.Is(err, boom))
}

type fakeResumer struct{ path string }

func (r *fakeResumer) ReadModelFromFile(path string) error {
	r.path = path
	if path == "missing" {
		return errors.New("not found")
	}
	return nil
}

func TestResume(t *testing.T) {
	r := &fakeResumer{}
	assert.NoError(t, Resume(r, ""))
	assert.Equal(t, "", r.path)
	assert.NoError(t, Resume(r, "base"))
	assert.Equal(t, "base", r.path)
	assert.Error(t, Resume(r, "missing"))
}

func TestSuccess(t *testing.T) {
	qids := []relations.QID{1, 1, 2, 2, 3}
	labels := []float64{1, 0, 0, 1, 0}
	assert.Equal(t, 100, Success(qids, labels, []float64{0.9, 0.1, 0.2, 0.8, 0.5}))
	assert.Equal(t, 50, Success(qids, labels, []float64{0.9, 0.1, 0.8, 0.2, 0.5}))
	assert.Equal(t, 0, Success(qids, labels, []float64{0.1, 0.9, 0.8, 0.2, 0.5}))
	// ties go to the first example
	assert.Equal(t, 50, Success(qids, labels, []float64{0.5, 0.5, 0.5, 0.5, 0.5}))
	assert.Equal(t, 0, Success(nil, nil, nil))
}

func TestNewEvaluateFunc(t *testing.T) {
	qids := []relations.QID{1, 1, 2, 2}
	labels := []float64{1, 0, 0, 1}
	scores := []float64{1, 0, 0, 1}
	eval := NewEvaluateFunc(qids, labels, 2, func(i int) float64 { return scores[i] })
	s1, fp1 := eval()
	assert.Equal(t, 100, s1)

	scores[0], scores[1] = 0, 1
	s2, fp2 := eval()
	assert.Equal(t, 50, s2)
	assert.NotEqual(t, fp1, fp2)
}

type fakeNet struct{ units []hashtron.Hashtron }

func (n *fakeNet) Len() int                             { return len(n.units) }
func (n *fakeNet) GetHashtron(i int) *hashtron.Hashtron { return &n.units[i] }

func TestTrainUnitFunc(t *testing.T) {
	net := &fakeNet{units: make([]hashtron.Hashtron, 2)}
	train := NewTrainUnitFunc(net, rand.New(rand.NewSource(1)), func(unit int, tally *datasets.Tally) {
		if unit == 0 {
			tally.AddVote(10, true, 1)
			tally.AddVote(20, false, 1)
		}
	})

	assert.Nil(t, train(1))

	undo := train(0)
	require.NotNil(t, undo)
	assert.True(t, net.units[0].Trained())
	assert.True(t, net.units[0].Forward(10, false))
	undo()
	assert.False(t, net.units[0].Trained())
}

func TestLoopFuncNeverKeepsWorse(t *testing.T) {
	net := &fakeNet{units: make([]hashtron.Hashtron, 3)}
	var successes = []int{50, 40, 60, 60, 55, 60, 60, 60}
	var calls int
	evaluate := func() (int, [32]byte) {
		s := successes[calls%len(successes)]
		calls++
		return s, [32]byte{byte(s)}
	}
	var undone int
	trainUnit := func(unit int) func() {
		return func() { undone++ }
	}
	loop := NewLoopFunc(net, 2, rand.New(rand.NewSource(1)), zap.NewNop(), evaluate, trainUnit)
	final := loop()
	assert.Equal(t, 60, final)
	assert.Equal(t, 2, undone)
}
