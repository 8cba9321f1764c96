package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCalculationOrg(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	rec := testRecord(t, "01HQ1234ABCDEFGH", at)

	result := FormatCalculationOrg(rec)

	assert.Contains(t, result, "** Profit: Long Single Entry (01HQ1234)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: 01HQ1234ABCDEFGH")
	assert.Contains(t, result, ":CREATED: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":RISK_PCT: 2.00")
	assert.Contains(t, result, ":STOP_LOSS: 95.0000")
	assert.Contains(t, result, ":POSITION_USD: 4000.00")
	assert.Contains(t, result, ":PROFIT: 300.00")
	assert.Contains(t, result, ":RR: 1.50")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "#+begin_example\n===== Profit Calculation =====\n#+end_example\n")
}

func TestFormatCalculationOrgPositionOmitsProfit(t *testing.T) {
	t.Parallel()

	rec := CalculationRecord{ID: "short", Kind: "position", Direction: "Short", Strategy: "Equal-Sized DCA"}
	result := FormatCalculationOrg(rec)

	assert.Contains(t, result, "** Position: Short Equal-Sized DCA (short)")
	assert.NotContains(t, result, ":PROFIT:")
	assert.NotContains(t, result, "#+begin_example")
}

func TestFormatCalculationsOrg(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	out := FormatCalculationsOrg([]CalculationRecord{
		testRecord(t, "A", at),
		testRecord(t, "B", at),
	})
	assert.Equal(t, 2, strings.Count(out, ":PROPERTIES:"))
	assert.Contains(t, out, ":END:\n\n#+begin_example")
	assert.Empty(t, FormatCalculationsOrg(nil))
}
