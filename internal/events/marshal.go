package events

import (
	"encoding/json"
	"fmt"
)

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func UnmarshalEnvelope(b []byte) (Envelope, error) {
	var ev Envelope
	if err := json.Unmarshal(b, &ev); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return ev, nil
}
