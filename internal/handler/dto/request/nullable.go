package request

import (
	"bytes"
	"encoding/json"
	"slices"

	"restaurant-api/internal/pkg/errs"
)

const msgMayNotBeNull = "This field may not be null."

// decodePartial decodes b into v, rejecting unknown fields, and reports the
// keys sent as an explicit JSON null.
func decodePartial(b []byte, v any) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	var nulls []string
	for k, val := range raw {
		if bytes.Equal(bytes.TrimSpace(val), []byte("null")) {
			nulls = append(nulls, k)
		}
	}
	slices.Sort(nulls)
	return nulls, nil
}

func nullFieldsError(nulls []string) error {
	if len(nulls) == 0 {
		return nil
	}
	fe := errs.NewFieldErrors()
	for _, f := range nulls {
		fe.AddMessage(f, msgMayNotBeNull)
	}
	return fe.Err()
}
