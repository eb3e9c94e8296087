package document_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backoffice-api/internal/domain/document"
)

// ──────────────────────────────────────────────────────────────────────────────
// ResolveTotals is the single definition of "the true total" for every
// display context. These vectors pin the arithmetic down exactly: if the
// derivation or rounding changes, rendered documents change with it.
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveTotals_DerivedVector(t *testing.T) {
	// 2 × £10.00 + 1 × £5.50 at 20% tax.
	lines := []document.Amount{
		document.ResolveLineTotal(document.Amount{}, document.AmountFromInt(2), document.AmountFromFloat(10.00)),
		document.ResolveLineTotal(document.Amount{}, document.AmountFromInt(1), document.AmountFromFloat(5.50)),
	}

	totals := document.ResolveTotals(lines, document.Amount{}, document.AmountFromInt(20))

	assert.Equal(t, "25.50", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "5.10", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "30.60", totals.Total.StringFixed(2))
}

func TestResolveTotals_FallsBackToStoredSubtotal(t *testing.T) {
	// No usable lines: the stored subtotal is the only source left, but tax
	// and total are still derived, never read from storage.
	totals := document.ResolveTotals(nil, document.AmountFromFloat(99.90), document.AmountFromInt(10))

	assert.Equal(t, "99.90", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "9.99", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "109.89", totals.Total.StringFixed(2))
}

func TestResolveTotals_ZeroRate(t *testing.T) {
	lines := []document.Amount{document.AmountFromFloat(40)}
	totals := document.ResolveTotals(lines, document.Amount{}, document.Amount{})

	assert.Equal(t, "40.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "40.00", totals.Total.StringFixed(2))
}

func TestResolveLineTotal_StoredNonZeroWins(t *testing.T) {
	got := document.ResolveLineTotal(
		document.AmountFromFloat(7.77),
		document.AmountFromInt(3),
		document.AmountFromFloat(4.00),
	)
	assert.Equal(t, "7.77", got.StringFixed(2))
}

func TestResolveLineTotal_RecomputesStoredZero(t *testing.T) {
	// A stored zero with usable inputs is a stale record, not a free item.
	got := document.ResolveLineTotal(
		document.Amount{},
		document.AmountFromInt(3),
		document.AmountFromFloat(4.00),
	)
	assert.Equal(t, "12.00", got.StringFixed(2))
}

func TestResolveLineTotal_NegativeInputsYieldZero(t *testing.T) {
	got := document.ResolveLineTotal(
		document.Amount{},
		document.AmountFromInt(-1),
		document.AmountFromFloat(4.00),
	)
	assert.True(t, got.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Amount decoding — the normalization pass for decimal-as-text persistence.
// ──────────────────────────────────────────────────────────────────────────────

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json number", `{"v": 12.34}`, "12.34"},
		{"decimal as text", `{"v": "12.34"}`, "12.34"},
		{"integer text", `{"v": "250"}`, "250.00"},
		{"null", `{"v": null}`, "0.00"},
		{"empty string", `{"v": ""}`, "0.00"},
		{"garbage", `{"v": "not-a-number"}`, "0.00"},
		{"absent", `{}`, "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var payload struct {
				V document.Amount `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.in), &payload),
				"Amount decoding must never fail")
			assert.Equal(t, tc.want, payload.V.StringFixed(2))
		})
	}
}

func TestAmount_MarshalJSON_EmitsNumber(t *testing.T) {
	out, err := json.Marshal(struct {
		V document.Amount `json:"v"`
	}{V: document.AmountFromFloat(12.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v": 12.5}`, string(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Display formats shared by both renderers.
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatters(t *testing.T) {
	assert.Equal(t, "£25.50", document.FormatMoney(document.AmountFromFloat(25.5)))
	assert.Equal(t, "£0.00", document.FormatMoney(document.Amount{}))
	assert.Equal(t, "20.00%", document.FormatRate(document.AmountFromInt(20)))
	assert.Equal(t, "3", document.FormatQuantity(document.AmountFromInt(3)))
	assert.Equal(t, "2.5", document.FormatQuantity(document.AmountFromFloat(2.5)))
}

func TestFormatDate_UKLongForm(t *testing.T) {
	created := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "05 March 2024", document.FormatDate(created))
}

func TestAmountFromString(t *testing.T) {
	assert.Equal(t, "19.99", document.AmountFromString(" 19.99 ").StringFixed(2))
	assert.True(t, document.AmountFromString("oops").IsZero())
}
