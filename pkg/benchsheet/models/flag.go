package models

import (
	"bytes"
	"encoding/json"
)

// Flag is the rendered schemapack state.
type Flag string

const (
	FlagNone     Flag = "None"
	FlagEnabled  Flag = "Enabled"
	FlagDisabled Flag = "Disabled"
)

// ParseFlag renders a raw schemapack value. An absent value is FlagNone,
// true (or a number equal to 1) is FlagEnabled, anything else is FlagDisabled.
func ParseFlag(raw json.RawMessage) Flag {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return FlagNone
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return FlagDisabled
	}

	switch t := v.(type) {
	case bool:
		if t {
			return FlagEnabled
		}
	case float64:
		if t == 1 {
			return FlagEnabled
		}
	}

	return FlagDisabled
}

