package entity

import "github.com/shopspring/decimal"

// Review is a per-request value with no identity. Provider payloads may omit any field,
// in which case it stays at its zero value.
type Review struct {
	AuthorName              string
	Rating                  decimal.NullDecimal
	RelativeTimeDescription string
	Text                    string
}
