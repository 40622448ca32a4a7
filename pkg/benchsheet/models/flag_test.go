package models

import (
	"encoding/json"
	"testing"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		raw      string
		expected Flag
	}{
		{"", FlagNone},
		{"true", FlagEnabled},
		{" true ", FlagEnabled},
		{"1", FlagEnabled},
		{"1.0", FlagEnabled},
		{"false", FlagDisabled},
		{"null", FlagDisabled},
		{"0", FlagDisabled},
		{"2", FlagDisabled},
		{`"true"`, FlagDisabled},
		{`"Enabled"`, FlagDisabled},
		{"{}", FlagDisabled},
	}

	for _, tt := range tests {
		result := ParseFlag(json.RawMessage(tt.raw))
		if result != tt.expected {
			t.Errorf("ParseFlag(%q) = %q, expected %q", tt.raw, result, tt.expected)
		}
	}
}
