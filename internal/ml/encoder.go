package ml

import (
	"fmt"
	"strings"
)

// Codebook is a bijective mapping between observed categorical values
// and dense integer codes. Codes follow first-seen corpus order, so a
// fixed corpus ordering always yields the same encoding.
type Codebook struct {
	values []string
	codes  map[string]int
}

// NewCodebook builds a codebook from the observed values, in order.
// Duplicates collapse onto their first occurrence.
func NewCodebook(observed []string) *Codebook {
	cb := &Codebook{codes: make(map[string]int)}
	for _, v := range observed {
		if _, ok := cb.codes[v]; ok {
			continue
		}
		cb.codes[v] = len(cb.values)
		cb.values = append(cb.values, v)
	}
	return cb
}

// Len reports the number of distinct values in the codebook.
func (cb *Codebook) Len() int {
	return len(cb.values)
}

// Code returns the integer code for a value observed at fit time.
func (cb *Codebook) Code(value string) (int, bool) {
	code, ok := cb.codes[value]
	return code, ok
}

// Value decodes a code back to its value. Codes outside the table are
// an error condition: they cannot come from this codebook.
func (cb *Codebook) Value(code int) (string, error) {
	if code < 0 || code >= len(cb.values) {
		return "", fmt.Errorf("code %d outside codebook of %d values", code, len(cb.values))
	}
	return cb.values[code], nil
}

// Values returns the fitted values in code order. Callers must not
// mutate the returned slice.
func (cb *Codebook) Values() []string {
	return cb.values
}

// LocationCode resolves a location key via case-insensitive substring
// match against the fitted location values. A key matching nothing in
// the training corpus falls back to code 0 on a best-effort basis
// rather than failing the prediction.
func (cb *Codebook) LocationCode(key string) int {
	needle := strings.ToUpper(key)
	for code, v := range cb.values {
		if strings.Contains(strings.ToUpper(v), needle) {
			return code
		}
	}
	return 0
}
