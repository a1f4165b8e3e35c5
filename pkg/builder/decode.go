package builder

import (
	"encoding/json"
	"fmt"
)

// Fields every response body of a given shape must carry, non-null.
var (
	auctionErrorFields  = []string{"error", "status_code", "status_text"}
	auctionResultFields = []string{"chain_id", "height", "payments"}
	bidResultFields     = []string{"chain_id", "height", "kind", "tx_hashes"}
)

// decodeBody unmarshals data into v after checking that data is a JSON object
// holding every one of fields. encoding/json alone would accept {} or null.
func decodeBody(data []byte, v any, fields []string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj == nil {
		return fmt.Errorf("body is null")
	}
	for _, f := range fields {
		raw, ok := obj[f]
		if !ok {
			return fmt.Errorf("missing field %q", f)
		}
		if string(raw) == "null" {
			return fmt.Errorf("field %q is null", f)
		}
	}
	return json.Unmarshal(data, v)
}
