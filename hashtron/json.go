package hashtron

import "encoding/json"
import "github.com/pkg/errors"

type hashtronJSON struct {
	Salt       uint32 `json:"salt"`
	Modulo     uint32 `json:"modulo"`
	Table      []byte `json:"table,omitempty"`
	Quaternary []byte `json:"q,omitempty"`
}

// MarshalJSON serializes the hashtron
func (h Hashtron) MarshalJSON() ([]byte, error) {
	return json.Marshal(hashtronJSON{
		Salt:       h.salt,
		Modulo:     h.modulo,
		Table:      h.table,
		Quaternary: h.quaternary,
	})
}

// UnmarshalJSON deserializes the hashtron
func (h *Hashtron) UnmarshalJSON(data []byte) error {
	var v hashtronJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if uint64(len(v.Table)) != (uint64(v.Modulo)+7)/8 {
		return errors.New("hashtron table size does not match modulo")
	}
	h.salt = v.Salt
	h.modulo = v.Modulo
	h.table = v.Table
	h.quaternary = v.Quaternary
	if h.modulo == 0 {
		h.table = nil
	}
	return nil
}
