// Package input turns the raw text a calculator form collects into engine
// inputs. Individual malformed rows are dropped rather than rejected, the way
// the form has always behaved; required scalar fields must parse.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyeddy/tradecalc/risk"
)

// Mode selects how entry rows are read.
type Mode int

const (
	// Prospective treats every entry row as filled.
	Prospective Mode = iota
	// PostTrade only uses rows marked as triggered.
	PostTrade
)

// MaxTakeProfits is the largest number of take-profit rows a form offers.
const MaxTakeProfits = 5

// ParseError reports a required field that is not a number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Float parses a required numeric field.
func Float(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ParseError{Field: field}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: s, Err: err}
	}
	return v, nil
}

// OptionalFloat returns nil for a blank field.
func OptionalFloat(field, s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := Float(field, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// RiskFraction parses a percentage such as "1.5" and returns 0.015.
func RiskFraction(s string) (float64, error) {
	v, err := Float("risk", s)
	if err != nil {
		return 0, err
	}
	return v / 100.0, nil
}

// EntryRow is one entry price field with its triggered box.
type EntryRow struct {
	Price     string
	Triggered bool
}

// TPRow is one take-profit row.
type TPRow struct {
	Price        string
	ClosePercent string
	Triggered    bool
}

// EntryPrices returns the parseable prices of rows in order. In PostTrade
// mode rows that were not triggered are skipped. Rows that fail to parse are
// dropped; dropped counts them.
func EntryPrices(rows []EntryRow, mode Mode) (prices []float64, dropped int) {
	for _, r := range rows {
		if mode == PostTrade && !r.Triggered {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Price), 64)
		if err != nil {
			dropped++
			continue
		}
		prices = append(prices, v)
	}
	return prices, dropped
}

// TakeProfitLegs converts rows whose price and close percent both parse.
func TakeProfitLegs(rows []TPRow) (legs []risk.TakeProfitLeg, dropped int) {
	for _, r := range rows {
		p, err := strconv.ParseFloat(strings.TrimSpace(r.Price), 64)
		if err != nil {
			dropped++
			continue
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(r.ClosePercent), 64)
		if err != nil {
			dropped++
			continue
		}
		legs = append(legs, risk.TakeProfitLeg{
			Price:        p,
			ClosePercent: pct,
			Triggered:    r.Triggered,
		})
	}
	return legs, dropped
}

// NoEntriesError is the message shown when no usable entry remains.
func NoEntriesError(mode Mode) error {
	if mode == PostTrade {
		return &risk.ValidationError{Field: "entries", Msg: "Please mark at least one entry as triggered."}
	}
	return &risk.ValidationError{Field: "entries", Msg: "Please provide at least one entry price."}
}
