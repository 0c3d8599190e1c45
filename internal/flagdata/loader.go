package flagdata

import (
	"encoding/json"
	"fmt"
)

// decode reads an embedded JSON file into a value of type T.
func decode[T any](filename string) (T, error) {
	var out T

	raw, err := dataFS.ReadFile(filename)
	if err != nil {
		return out, fmt.Errorf("read embedded %s: %w", filename, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", filename, err)
	}
	return out, nil
}
