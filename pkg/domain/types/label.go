package types

import "github.com/m-mizutani/goerr/v2"

// DefaultExemptLabel marks issues that must never be postponed
const DefaultExemptLabel = "lane::staging"

// Label is a tracker label name. Comparison is exact and case-sensitive.
type Label string

// Validate checks if the label can be used as an exemption label
func (l Label) Validate() error {
	if l == "" {
		return goerr.New("label cannot be empty")
	}
	return nil
}

// String returns the string representation of Label
func (l Label) String() string {
	return string(l)
}
