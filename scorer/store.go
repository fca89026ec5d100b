package scorer

import (
	"compress/lzw"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/relscorer/hashtron"
)

// Ext is the file extension of stored models
const Ext = ".json.lzw"

// ErrBadModel is returned for a stored model which cannot be decoded or does not fit its own topology
var ErrBadModel = errors.New("bad model file")

type modelFile struct {
	ID      uuid.UUID           `json:"id"`
	Name    string              `json:"name"`
	Created time.Time           `json:"created"`
	Success int                 `json:"success"`
	Options Options             `json:"options"`
	Filters []hashtron.Hashtron `json:"filters"`
	Hidden  []hashtron.Hashtron `json:"hidden"`
}

// ModelPath returns the file a model named name is stored to inside dir
func ModelPath(dir, name string) string {
	return filepath.Join(dir, name+Ext)
}

// StoreModel writes the model weights to dir/name.json.lzw, creating dir when needed
func (s *RelScorer) StoreModel(dir, name string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create model directory")
	}
	path := ModelPath(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create model file")
	}
	err = s.WriteModel(file, name)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "store model %s", path)
	}
	s.log.Info("stored model", zap.String("path", path), zap.String("id", s.id.String()))
	return nil
}

// WriteModel writes the lzw compressed model weights to a writer
func (s *RelScorer) WriteModel(w io.Writer, name string) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)
	err := json.NewEncoder(lw).Encode(modelFile{
		ID:      s.id,
		Name:    name,
		Created: time.Now().UTC(),
		Success: s.success,
		Options: s.opts,
		Filters: s.filters,
		Hidden:  s.hidden,
	})
	if err != nil {
		lw.Close()
		return err
	}
	return lw.Close()
}

// ReadModelFromFile reads model weights from a lzw file. The path may omit the .json.lzw extension.
// The stored topology replaces the topology of s.
func (s *RelScorer) ReadModelFromFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.HasSuffix(path, Ext) {
		path += Ext
	}
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open model file")
	}
	defer file.Close()
	if err := s.ReadModel(file); err != nil {
		return errors.Wrapf(err, "read model %s", path)
	}
	s.log.Info("loaded model",
		zap.String("path", path),
		zap.String("id", s.id.String()),
		zap.Int("success", s.success),
	)
	return nil
}

// ReadModel reads lzw compressed model weights from a reader
func (s *RelScorer) ReadModel(r io.Reader) error {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()

	var mf modelFile
	if err := json.NewDecoder(lr).Decode(&mf); err != nil {
		return errors.Wrapf(ErrBadModel, "%v", err)
	}
	if err := mf.Options.validate(); err != nil {
		return err
	}
	if len(mf.Filters) != mf.Options.NumFilters || len(mf.Hidden) != mf.Options.NumHiddenNodes {
		return errors.Wrapf(ErrBadModel, "%d filters and %d hidden nodes stored, %d and %d declared",
			len(mf.Filters), len(mf.Hidden), mf.Options.NumFilters, mf.Options.NumHiddenNodes)
	}
	if mf.Options.NumFilters != s.opts.NumFilters || mf.Options.NumHiddenNodes != s.opts.NumHiddenNodes ||
		mf.Options.UseAttention != s.opts.UseAttention || mf.Options.UseTypeNames != s.opts.UseTypeNames {
		s.log.Warn("stored model topology replaces configured topology",
			zap.Int("num_filters", mf.Options.NumFilters),
			zap.Int("num_hidden_nodes", mf.Options.NumHiddenNodes),
			zap.Bool("use_attention", mf.Options.UseAttention),
			zap.Bool("use_type_names", mf.Options.UseTypeNames),
		)
	}
	s.opts.NumFilters = mf.Options.NumFilters
	s.opts.NumHiddenNodes = mf.Options.NumHiddenNodes
	s.opts.UseAttention = mf.Options.UseAttention
	s.opts.UseTypeNames = mf.Options.UseTypeNames
	s.build()
	copy(s.filters, mf.Filters)
	copy(s.hidden, mf.Hidden)
	s.id = mf.ID
	s.success = mf.Success
	return nil
}

// Load creates a scorer from a stored model. Options other than the topology are taken from opts.
func Load(path string, opts Options) (*RelScorer, error) {
	if opts.NumFilters <= 0 {
		opts.NumFilters = 1
	}
	if opts.NumHiddenNodes <= 0 {
		opts.NumHiddenNodes = 1
	}
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	if err := s.ReadModelFromFile(path); err != nil {
		return nil, err
	}
	return s, nil
}
