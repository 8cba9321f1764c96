package cli

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradecalc/journal"
	"github.com/rustyeddy/tradecalc/pkg/id"
	"github.com/rustyeddy/tradecalc/risk"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (rc *RootConfig) openJournal() (journal.Journal, error) {
	switch rc.JournalType {
	case "csv":
		return journal.NewCSV(rc.CSVPath)
	case "sqlite":
		return journal.NewSQLite(rc.DBPath)
	}
	return nil, nil
}

// record appends res to the configured journal. Without one it does nothing.
func (rc *RootConfig) record(res risk.CalculationResult, text string) error {
	j, err := rc.openJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	calcID := id.New()
	at, err := id.Time(calcID)
	if err != nil {
		return fmt.Errorf("calculation id: %w", err)
	}
	if err := j.RecordCalculation(journal.NewRecord(calcID, at, res, text)); err != nil {
		return fmt.Errorf("record calculation: %w", err)
	}

	rc.log.WithFields(logrus.Fields{
		"id":      calcID,
		"journal": rc.JournalType,
	}).Debug("calculation recorded")
	return nil
}

func newJournalCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query journaled calculations",
		Long: `Query and display calculations recorded in the SQLite journal.

Subcommands:
  show   - Get details of a specific calculation by ID
  today  - List calculations made today
  day    - List calculations made on a specific day

Examples:
  tradecalc journal show <calc-id>
  tradecalc journal today
  tradecalc journal day 2024-01-15`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show <calc-id>",
			Short: "Get details of a specific calculation",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				j, err := journal.NewSQLite(rc.DBPath)
				if err != nil {
					return fmt.Errorf("open db: %w", err)
				}
				defer j.Close()

				rec, err := j.GetCalculation(args[0])
				if err != nil {
					return fmt.Errorf("get calculation: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), journal.FormatCalculationOrg(rec))
				return nil
			},
		},
		&cobra.Command{
			Use:   "today",
			Short: "List calculations made today",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rc.listDay(cmd, time.Now().In(time.Local).Format("2006-01-02"))
			},
		},
		&cobra.Command{
			Use:   "day <YYYY-MM-DD>",
			Short: "List calculations made on a specific day",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return rc.listDay(cmd, args[0])
			},
		},
	)
	return cmd
}

func (rc *RootConfig) listDay(cmd *cobra.Command, day string) error {
	start, end, err := dayBounds(time.Local, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := journal.NewSQLite(rc.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListCalculationsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query calculations: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatCalculationsOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
