package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawNumber captures a JSON value that should hold a decimal but may
// arrive as a number, a string, null, or garbage. The raw token is kept
// so presence can be checked before coercion.
type RawNumber struct {
	raw     string
	present bool
}

func (n *RawNumber) UnmarshalJSON(data []byte) error {
	n.present = true
	if string(data) == "null" {
		n.raw = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n.raw = s
		return nil
	}
	n.raw = string(data)
	return nil
}

// Empty reports whether the field was absent, null, or a blank string.
func (n RawNumber) Empty() bool {
	return !n.present || strings.TrimSpace(n.raw) == ""
}

// Coerce parses the captured token as a decimal. Anything that does not
// parse to a finite number yields nil; it never fails.
func (n RawNumber) Coerce() *float64 {
	s := strings.TrimSpace(n.raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
