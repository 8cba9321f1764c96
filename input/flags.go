package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseEntryFlag reads "PRICE[,TRIGGERED]". Entries default to triggered.
// The price is kept as text so EntryPrices applies the usual row dropping.
func ParseEntryFlag(s string) (EntryRow, error) {
	parts := strings.Split(s, ",")
	row := EntryRow{Price: strings.TrimSpace(parts[0]), Triggered: true}
	switch len(parts) {
	case 1:
	case 2:
		b, err := parseBool(parts[1])
		if err != nil {
			return EntryRow{}, fmt.Errorf("entry %q: %w", s, err)
		}
		row.Triggered = b
	default:
		return EntryRow{}, fmt.Errorf("entry %q: want PRICE[,TRIGGERED]", s)
	}
	return row, nil
}

// ParseTPFlag reads "PRICE,CLOSE%[,TRIGGERED]". Take profits default to not
// triggered.
func ParseTPFlag(s string) (TPRow, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return TPRow{}, fmt.Errorf("take profit %q: want PRICE,CLOSE%%[,TRIGGERED]", s)
	}
	row := TPRow{
		Price:        strings.TrimSpace(parts[0]),
		ClosePercent: strings.TrimSuffix(strings.TrimSpace(parts[1]), "%"),
	}
	if len(parts) == 3 {
		b, err := parseBool(parts[2])
		if err != nil {
			return TPRow{}, fmt.Errorf("take profit %q: %w", s, err)
		}
		row.Triggered = b
	}
	return row, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "hit", "triggered":
		return true, nil
	case "n", "no", "pending":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}
