package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neurlang/relscorer/scorer"
)

func TestParseArgsDefaults(t *testing.T) {
	r, err := parseArgs([]string{"-config", filepath.Join(t.TempDir(), "none.yaml"), "q.tsv"}, io.Discard)
	assert.Error(t, err)
	assert.Nil(t, r)

	r, err = parseArgs([]string{"q.tsv"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "q.tsv", r.questions)
	assert.Equal(t, "WQSP_ExtDeep_Ranker", r.cfg.Model.Name)
	assert.Equal(t, "models", r.cfg.Model.Path)
	assert.Equal(t, 0.1, r.cfg.Training.DevRatio)
	assert.Equal(t, 30, r.cfg.Training.NumEpochs)
	assert.Equal(t, 200, r.cfg.Network.NumHiddenNodes)
	assert.Equal(t, 64, r.cfg.Network.NumFilters)
	assert.True(t, r.cfg.Network.UseAttentionOrDefault())
}

func TestParseArgsMissingQuestions(t *testing.T) {
	_, err := parseArgs(nil, io.Discard)
	assert.True(t, errors.Is(err, errMissingQuestions))
	_, err = parseArgs([]string{"a.tsv", "b.tsv"}, io.Discard)
	assert.True(t, errors.Is(err, errMissingQuestions))
}

func TestParseArgsFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model:
  name: "FromConfig"
  path: "/srv/models"
training:
  num_epochs: 4
network:
  num_filters: 9
`), 0600))

	r, err := parseArgs([]string{
		"-config", path,
		"-m", "FromFlag",
		"-num-epochs", "2",
		"-no-attention",
		"-dev-ratio", "0",
		"q.tsv",
	}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "FromFlag", r.cfg.Model.Name)
	assert.Equal(t, "/srv/models", r.cfg.Model.Path)
	assert.Equal(t, 2, r.cfg.Training.NumEpochs)
	assert.Equal(t, 9, r.cfg.Network.NumFilters)
	assert.Equal(t, 0.0, r.cfg.Training.DevRatio)
	assert.False(t, r.cfg.Network.UseAttentionOrDefault())

	r, err = parseArgs([]string{"-config", path, "-model-name", "Long", "-e", "base", "q.tsv"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "Long", r.cfg.Model.Name)
	assert.Equal(t, "base", r.cfg.Model.Extend)
}

func TestTrain(t *testing.T) {
	dir := t.TempDir()
	var lines []string
	for _, w := range []string{"hamlet", "faust", "emma", "dracula", "ulysses", "beloved", "walden", "lolita", "carrie", "dune"} {
		lines = append(lines,
			"who wrote [m.0"+w+"|"+w+"] "+w+"\tbook.written_work.author\tpeople.person.place_of_birth,film.film.directed_by\tm.0"+w)
	}
	questions := filepath.Join(dir, "questions.tsv")
	require.NoError(t, os.WriteFile(questions, []byte(strings.Join(lines, "\n")+"\n"), 0644))

	models := filepath.Join(dir, "models")
	r, err := parseArgs([]string{
		"-p", models,
		"-m", "toy",
		"-num-epochs", "1",
		"-num-filters", "9",
		"-num-hidden-nodes", "3",
		"-threads", "2",
		questions,
	}, io.Discard)
	require.NoError(t, err)
	require.NoError(t, train(r, zap.NewNop()))

	s, err := scorer.Load(filepath.Join(models, "toy"), scorer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 9, s.Options().NumFilters)
	assert.Equal(t, 3, s.Options().NumHiddenNodes)
}

func TestTrainMissingFile(t *testing.T) {
	r, err := parseArgs([]string{filepath.Join(t.TempDir(), "missing.tsv")}, io.Discard)
	require.NoError(t, err)
	assert.Error(t, train(r, zap.NewNop()))
}
