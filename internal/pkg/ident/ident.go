package ident

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// ID is the canonical string form of a record identifier. Data files written
// by earlier versions of the site contain both numeric and string ids, so
// decoding coerces numbers to their string form and every lookup compares a
// single representation.
type ID string

func New() ID {
	return ID(uuid.NewString())
}

// Normalize converts a request-path identifier into the canonical form.
func Normalize(raw string) ID {
	return ID(strings.TrimSpace(raw))
}

func (id ID) String() string {
	return string(id)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
