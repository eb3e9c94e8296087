package document

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Totals are the figures a renderer is allowed to print. They are always
// recomputed here rather than trusted verbatim from storage, so the PDF and
// Word outputs of the same record can never disagree on a number.
type Totals struct {
	Subtotal  Amount
	TaxAmount Amount
	Total     Amount
}

// ResolveLineTotal returns the printable total of a single line.
//
// A non-zero stored total wins. A stored zero is treated as "stale or never
// calculated" and recomputed as quantity × unit price when both inputs are
// non-negative; otherwise the line is genuinely worth zero. Records written
// by older clients stored zero here routinely, so display code must not
// trust it.
func ResolveLineTotal(stored, quantity, unitPrice Amount) Amount {
	if !stored.IsZero() {
		return stored
	}
	if quantity.Sign() >= 0 && unitPrice.Sign() >= 0 {
		return Amount{quantity.Mul(unitPrice.Decimal)}
	}
	return Amount{}
}

// ResolveTotals derives the document figures from already-resolved line
// totals. The subtotal is the line sum when positive, falling back to the
// stored subtotal for legacy records with no usable lines. Tax and grand
// total are always derived from the resolved subtotal and the rate — never
// read from storage.
func ResolveTotals(lineTotals []Amount, storedSubtotal, taxRatePercent Amount) Totals {
	sum := decimal.Decimal{}
	for _, lt := range lineTotals {
		sum = sum.Add(lt.Decimal)
	}

	subtotal := sum
	if sum.Sign() <= 0 {
		subtotal = storedSubtotal.Decimal
	}

	tax := subtotal.Mul(taxRatePercent.Decimal).Div(hundred).Round(2)
	return Totals{
		Subtotal:  Amount{subtotal},
		TaxAmount: Amount{tax},
		Total:     Amount{subtotal.Add(tax)},
	}
}
