package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/tradecalc/input"
	"github.com/rustyeddy/tradecalc/risk"
	"gopkg.in/yaml.v3"
)

// Plan is a calculator form saved to disk: the same fields a trader fills in,
// already in numeric form.
type Plan struct {
	Mode        string          `json:"mode" yaml:"mode"` // "position" or "profit"
	Account     AccountConfig   `json:"account" yaml:"account"`
	StopLoss    float64         `json:"stop_loss" yaml:"stop_loss"`
	Entry       EntryConfig     `json:"entry" yaml:"entry"`
	TakeProfits []TakeProfitRow `json:"take_profits,omitempty" yaml:"take_profits,omitempty"`
	ClosePrice  *float64        `json:"close_price,omitempty" yaml:"close_price,omitempty"`
	Policy      PolicyConfig    `json:"policy" yaml:"policy"`
	Journal     JournalConfig   `json:"journal" yaml:"journal"`
}

// AccountConfig holds the balance and the percent of it put at risk.
type AccountConfig struct {
	Balance     float64 `json:"balance" yaml:"balance"`
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"` // 1 = 1%
}

// EntryConfig selects the entry strategy and its prices.
type EntryConfig struct {
	Strategy string     `json:"strategy" yaml:"strategy"`
	Prices   []EntryRow `json:"prices" yaml:"prices"`
}

// EntryRow is one entry price. Triggered defaults to true.
type EntryRow struct {
	Price     float64 `json:"price" yaml:"price"`
	Triggered *bool   `json:"triggered,omitempty" yaml:"triggered,omitempty"`
}

// IsTriggered reports the triggered flag, defaulting to true.
func (e EntryRow) IsTriggered() bool {
	return e.Triggered == nil || *e.Triggered
}

// TakeProfitRow is one take-profit leg.
type TakeProfitRow struct {
	Price        float64 `json:"price" yaml:"price"`
	ClosePercent float64 `json:"close_percent" yaml:"close_percent"`
	Triggered    bool    `json:"triggered" yaml:"triggered"`
}

// PolicyConfig holds advisory review limits. Zero disables a check.
type PolicyConfig struct {
	MaxRiskPercent float64 `json:"max_risk_percent" yaml:"max_risk_percent"`
	MinRR          float64 `json:"min_rr" yaml:"min_rr"`
	MaxTakeProfits int     `json:"max_take_profits" yaml:"max_take_profits"`
}

// JournalConfig contains journaling parameters. An empty Type disables it.
type JournalConfig struct {
	Type    string `json:"type,omitempty" yaml:"type,omitempty"` // "", "csv" or "sqlite"
	CSVFile string `json:"csv_file,omitempty" yaml:"csv_file,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

const (
	ModePosition = "position"
	ModeProfit   = "profit"
)

// LoadFromFile loads a plan from a file (YAML, falling back to JSON).
func LoadFromFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	p := &Plan{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, p)
	if err != nil {
		err = json.Unmarshal(data, p)
		if err != nil {
			return nil, fmt.Errorf("parse plan (tried YAML and JSON): %w", err)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	return p, nil
}

// SaveToFile saves the plan as YAML for .yaml/.yml paths and JSON otherwise.
func (p *Plan) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write plan file: %w", err)
	}

	return nil
}

// Validate checks the shape of the plan. Price relationships such as mixed
// entry direction are left to the calculation itself.
func (p *Plan) Validate() error {
	switch p.Mode {
	case "", ModePosition, ModeProfit:
	default:
		return fmt.Errorf("mode must be 'position' or 'profit'")
	}
	if p.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if p.Account.RiskPercent <= 0 || p.Account.RiskPercent > 100 {
		return fmt.Errorf("account.risk_percent must be between 0 and 100")
	}
	s, err := risk.ParseEntryStrategy(p.Entry.Strategy)
	if err != nil {
		return fmt.Errorf("entry.strategy: %w", err)
	}
	if !s.CountAllowed(len(p.Entry.Prices)) {
		return fmt.Errorf("entry.prices: %s takes %v entries, got %d", s, s.EntryCounts(), len(p.Entry.Prices))
	}
	if len(p.TakeProfits) > input.MaxTakeProfits {
		return fmt.Errorf("take_profits: at most %d allowed", input.MaxTakeProfits)
	}
	for i, tp := range p.TakeProfits {
		if tp.ClosePercent < 0 || tp.ClosePercent > 100 {
			return fmt.Errorf("take_profits[%d].close_percent must be between 0 and 100", i)
		}
	}
	if p.Policy.MaxRiskPercent < 0 || p.Policy.MinRR < 0 || p.Policy.MaxTakeProfits < 0 {
		return fmt.Errorf("policy limits must not be negative")
	}
	switch p.Journal.Type {
	case "":
	case "csv":
		if p.Journal.CSVFile == "" {
			return fmt.Errorf("journal csv_file required for CSV type")
		}
	case "sqlite":
		if p.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	return nil
}

// IsProfit reports whether the plan runs the post-trade calculator.
func (p *Plan) IsProfit() bool {
	return p.Mode == ModeProfit
}

// PositionRequest converts the plan into engine inputs. In profit mode only
// triggered entries are used.
func (p *Plan) PositionRequest() (risk.PositionRequest, error) {
	s, err := risk.ParseEntryStrategy(p.Entry.Strategy)
	if err != nil {
		return risk.PositionRequest{}, err
	}
	mode := input.Prospective
	if p.IsProfit() {
		mode = input.PostTrade
	}

	var entries []float64
	for _, e := range p.Entry.Prices {
		if mode == input.PostTrade && !e.IsTriggered() {
			continue
		}
		entries = append(entries, e.Price)
	}
	if len(entries) == 0 {
		return risk.PositionRequest{}, input.NoEntriesError(mode)
	}

	return risk.PositionRequest{
		Balance:      p.Account.Balance,
		RiskFraction: p.Account.RiskPercent / 100.0,
		StopLoss:     p.StopLoss,
		Strategy:     s,
		Entries:      entries,
	}, nil
}

// ProfitRequest converts the plan into post-trade engine inputs.
func (p *Plan) ProfitRequest() (risk.ProfitRequest, error) {
	pos, err := p.PositionRequest()
	if err != nil {
		return risk.ProfitRequest{}, err
	}
	legs := make([]risk.TakeProfitLeg, len(p.TakeProfits))
	for i, tp := range p.TakeProfits {
		legs[i] = risk.TakeProfitLeg{
			Price:        tp.Price,
			ClosePercent: tp.ClosePercent,
			Triggered:    tp.Triggered,
		}
	}
	return risk.ProfitRequest{
		PositionRequest: pos,
		Legs:            legs,
		ClosePrice:      p.ClosePrice,
	}, nil
}

// RiskPolicy converts the policy section into a risk.Policy.
func (p *Plan) RiskPolicy() risk.Policy {
	return risk.Policy{
		MaxRiskPct:     p.Policy.MaxRiskPercent / 100.0,
		MinRR:          p.Policy.MinRR,
		MaxTakeProfits: p.Policy.MaxTakeProfits,
	}
}

// Default returns a plan with sensible defaults
func Default() *Plan {
	closePrice := 105.0
	return &Plan{
		Mode: ModeProfit,
		Account: AccountConfig{
			Balance:     10000,
			RiskPercent: 1,
		},
		StopLoss: 95,
		Entry: EntryConfig{
			Strategy: risk.SingleEntry.String(),
			Prices:   []EntryRow{{Price: 100}},
		},
		TakeProfits: []TakeProfitRow{
			{Price: 110, ClosePercent: 50, Triggered: true},
			{Price: 120, ClosePercent: 50},
		},
		ClosePrice: &closePrice,
		Policy: PolicyConfig{
			MaxRiskPercent: 2,
			MinRR:          1,
			MaxTakeProfits: input.MaxTakeProfits,
		},
	}
}
