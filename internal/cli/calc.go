package cli

import (
	"fmt"
	"io"

	"github.com/rustyeddy/tradecalc/input"
	"github.com/rustyeddy/tradecalc/report"
	"github.com/rustyeddy/tradecalc/risk"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// calcFlags are the form fields, kept as text so they go through the same
// parsing as any other front end.
type calcFlags struct {
	balance  string
	risk     string
	stop     string
	strategy string
	entries  []string
	tps      []string
	close    string

	maxRisk float64
	minRR   float64
	maxTPs  int
}

func (f *calcFlags) bind(cmd *cobra.Command, profit bool) {
	cmd.Flags().StringVar(&f.balance, "balance", "", "Account balance in USD")
	cmd.Flags().StringVar(&f.risk, "risk", "", "Risk per trade in percent (1 = 1%)")
	cmd.Flags().StringVar(&f.stop, "stop", "", "Stop loss price")
	cmd.Flags().StringVar(&f.strategy, "strategy", "single", "Entry strategy: single|dca|exponential")
	cmd.Flags().Float64Var(&f.maxRisk, "max-risk", 2, "Warn when planned risk exceeds this percent of balance (0 disables)")
	if profit {
		cmd.Flags().StringArrayVar(&f.entries, "entry", nil, "Entry as PRICE[,TRIGGERED] (repeatable)")
		cmd.Flags().StringArrayVar(&f.tps, "tp", nil, "Take profit as PRICE,CLOSE%[,TRIGGERED] (repeatable, up to 5)")
		cmd.Flags().StringVar(&f.close, "close", "", "Price the remaining position was closed at")
		cmd.Flags().Float64Var(&f.minRR, "min-rr", 0, "Warn when the realized risk-reward is below this (0 disables)")
		cmd.Flags().IntVar(&f.maxTPs, "max-tps", input.MaxTakeProfits, "Warn when more take profits are given (0 disables)")
	} else {
		cmd.Flags().StringArrayVar(&f.entries, "entry", nil, "Entry price (repeatable)")
	}
}

func (f *calcFlags) policy() risk.Policy {
	return risk.Policy{
		MaxRiskPct:     f.maxRisk / 100.0,
		MinRR:          f.minRR,
		MaxTakeProfits: f.maxTPs,
	}
}

func newPositionCmd(rc *RootConfig) *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "position",
		Short: "Size a position before entering a trade",
		Example: `  tradecalc position --balance 10000 --risk 1 --stop 95 --entry 100
  tradecalc position --balance 10000 --risk 1 --stop 90 --strategy exponential --entry 95 --entry 100 --entry 105`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.positionRequest(rc.log, input.Prospective)
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}
			res, err := risk.CalculatePosition(risk.Engine{}, req)
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}
			return rc.emit(cmd.OutOrStdout(), res, f.policy())
		},
	}
	f.bind(cmd, false)
	return cmd
}

func newProfitCmd(rc *RootConfig) *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "profit",
		Short: "Work out the profit of a trade after it played out",
		Long: `Work out the profit of a trade from its triggered entries and take profits.

Entries default to triggered and take profits to not triggered. Whatever the
triggered take profits did not close is closed at --close when given.`,
		Example: `  tradecalc profit --balance 10000 --risk 2 --stop 95 --entry 100 \
    --tp 110,50,yes --tp 120,50 --close 105`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.profitRequest(rc.log)
			if err != nil {
				return fmt.Errorf("profit: %w", err)
			}
			res, err := risk.CalculateProfit(risk.Engine{}, req)
			if err != nil {
				return fmt.Errorf("profit: %w", err)
			}
			return rc.emit(cmd.OutOrStdout(), res, f.policy())
		},
	}
	f.bind(cmd, true)
	return cmd
}

func (f *calcFlags) positionRequest(log *logrus.Logger, mode input.Mode) (risk.PositionRequest, error) {
	balance, err := input.Float("balance", f.balance)
	if err != nil {
		return risk.PositionRequest{}, err
	}
	riskFrac, err := input.RiskFraction(f.risk)
	if err != nil {
		return risk.PositionRequest{}, err
	}
	stop, err := input.Float("stop loss", f.stop)
	if err != nil {
		return risk.PositionRequest{}, err
	}
	s, err := risk.ParseEntryStrategy(f.strategy)
	if err != nil {
		return risk.PositionRequest{}, err
	}
	if len(f.entries) > 0 && !s.CountAllowed(len(f.entries)) {
		return risk.PositionRequest{}, fmt.Errorf("%s takes %v entries, got %d", s, s.EntryCounts(), len(f.entries))
	}

	rows := input.NewEntryRows(s)
	rows.Resize(len(f.entries))
	for i, e := range f.entries {
		row, err := input.ParseEntryFlag(e)
		if err != nil {
			return risk.PositionRequest{}, err
		}
		if mode == input.Prospective {
			row.Triggered = true
		}
		rows.Set(i, row)
	}

	prices, dropped := input.EntryPrices(rows.Items(), mode)
	if dropped > 0 {
		log.WithField("dropped", dropped).Debug("ignoring entries that are not numbers")
	}
	if len(prices) == 0 {
		return risk.PositionRequest{}, input.NoEntriesError(mode)
	}

	log.WithFields(logrus.Fields{
		"balance":  balance,
		"risk":     riskFrac,
		"stop":     stop,
		"strategy": s.String(),
		"entries":  prices,
	}).Debug("parsed inputs")

	return risk.PositionRequest{
		Balance:      balance,
		RiskFraction: riskFrac,
		StopLoss:     stop,
		Strategy:     s,
		Entries:      prices,
	}, nil
}

func (f *calcFlags) profitRequest(log *logrus.Logger) (risk.ProfitRequest, error) {
	pos, err := f.positionRequest(log, input.PostTrade)
	if err != nil {
		return risk.ProfitRequest{}, err
	}
	if len(f.tps) > input.MaxTakeProfits {
		return risk.ProfitRequest{}, fmt.Errorf("at most %d take profits allowed, got %d", input.MaxTakeProfits, len(f.tps))
	}

	rows := input.NewTPRows(len(f.tps))
	for i, tp := range f.tps {
		row, err := input.ParseTPFlag(tp)
		if err != nil {
			return risk.ProfitRequest{}, err
		}
		rows.Set(i, row)
	}
	legs, dropped := input.TakeProfitLegs(rows.Items())
	if dropped > 0 {
		log.WithField("dropped", dropped).Debug("ignoring take profits that are not numbers")
	}

	closePrice, err := input.OptionalFloat("close price", f.close)
	if err != nil {
		return risk.ProfitRequest{}, err
	}

	return risk.ProfitRequest{
		PositionRequest: pos,
		Legs:            legs,
		ClosePrice:      closePrice,
	}, nil
}

// emit prints the report and the policy review, then journals the result.
func (rc *RootConfig) emit(w io.Writer, res risk.CalculationResult, p risk.Policy) error {
	text := report.Render(res)
	fmt.Fprint(w, text)

	d := risk.Evaluate(p, res)
	if !d.Allowed {
		fmt.Fprintln(w, "----------------------------------------")
		fmt.Fprintln(w, "Policy Review:")
		for _, v := range d.Violations {
			fmt.Fprintf(w, "  [%s] %s\n", v.Code, v.Msg)
			rc.log.WithField("code", v.Code).Warn(v.Msg)
		}
	}

	return rc.record(res, text)
}
