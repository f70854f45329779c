package request

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// Decimal keeps the literal text of a JSON string or number so that no
// precision is lost before the domain parses it.
type Decimal string

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Decimal(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		// the decoder fills in the field name
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(*d)}
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) String() string { return string(d) }

func (d *Decimal) ptr() *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}
