package models

import "github.com/shopspring/decimal"

// FormatCrore renders an amount in lakhs as rupee crores, e.g. 240 -> "₹2.40 Cr".
func FormatCrore(lakhs int) string {
	return "₹" + decimal.New(int64(lakhs), -2).StringFixed(2) + " Cr"
}
