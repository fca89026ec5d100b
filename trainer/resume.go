package trainer

import "github.com/pkg/errors"

// Resumer can load previously stored weights
type Resumer interface {
	ReadModelFromFile(path string) error
}

// Resume loads the base model to extend, when one is given
func Resume(r Resumer, extend string) error {
	if extend == "" {
		return nil
	}
	return errors.Wrapf(r.ReadModelFromFile(extend), "extend model %s", extend)
}
