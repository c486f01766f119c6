// Package chart builds the bar-chart view model consumed by the dashboard.
package chart

import "salesboard/internal/core"

// Group is one month on the x-axis with its two bars. Heights are rounded
// percentages of the dataset maximum so templates can render the bars with
// plain CSS.
type Group struct {
	Label          string // short month label for the x-axis
	Month          string // full month label for tooltips
	Sales          int64
	Expenses       int64
	SalesHeight    int // 0-100
	ExpensesHeight int // 0-100
}

// BarChart is the full two-series chart: one group per record, in input
// order.
type BarChart struct {
	Groups []Group
	Max    int64 // largest single value across both series
}

// Build scales every bar against the dataset maximum. Very small non-zero
// values are clamped to a minimum height so they stay visible.
func Build(records []core.Record) BarChart {
	var max int64
	for _, r := range records {
		if r.Sales > max {
			max = r.Sales
		}
		if r.Expenses > max {
			max = r.Expenses
		}
	}

	c := BarChart{Max: max}
	for _, r := range records {
		c.Groups = append(c.Groups, Group{
			Label:          shortLabel(r.Month),
			Month:          r.Month,
			Sales:          r.Sales,
			Expenses:       r.Expenses,
			SalesHeight:    scale(r.Sales, max),
			ExpensesHeight: scale(r.Expenses, max),
		})
	}
	return c
}

// scale converts value to a rounded percent of max, clamped to [2,100] for
// non-zero values.
func scale(value, max int64) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	pct := int((value*100 + max/2) / max)
	if pct < 2 {
		pct = 2
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// shortLabel keeps the first three characters of the month name, matching
// the x-axis labels of the report chart.
func shortLabel(month string) string {
	runes := []rune(month)
	if len(runes) <= 3 {
		return month
	}
	return string(runes[:3])
}
