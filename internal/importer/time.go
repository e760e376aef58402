package importer

import (
	"encoding/json"
	"fmt"
	"time"
)

// legacyTime decodes the timestamps found in legacy exports: either
// an RFC 3339 string or a bare number of unix seconds.
type legacyTime struct {
	time.Time
}

func (t *legacyTime) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return fmt.Errorf("parsing legacy timestamp %q: %w", text, err)
		}
		t.Time = parsed
		return nil
	}

	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return fmt.Errorf("parsing legacy timestamp: %w", err)
	}
	t.Time = time.Unix(int64(seconds), 0)
	return nil
}
