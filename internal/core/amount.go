// Package core holds the domain types of the sales report pipeline.
//
// This file contains display helpers for whole-dollar amounts. Amounts are
// plain int64 dollars throughout; there is no fractional currency in the
// input format.
package core

import "strconv"

// FormatAmount renders a dollar amount with thousands separators, e.g.
// 4500 -> "$4,500" and -1300 -> "-$1,300". Used by the web dashboard and
// the CLI summary; calculations always stay on the raw int64.
func FormatAmount(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b = append(b, ',')
		}
		b = append(b, d)
	}
	if neg {
		return "-$" + string(b)
	}
	return "$" + string(b)
}
