package payroll

// DefaultBonusPercent is applied when no percentage is given
const DefaultBonusPercent = 10.0

// CalculateBonus returns salary plus the default bonus percentage
func CalculateBonus(salary float64) float64 {
	return CalculateBonusWithPercent(salary, DefaultBonusPercent)
}

// CalculateBonusWithPercent returns salary plus percent of it.
// Negative inputs are not rejected.
func CalculateBonusWithPercent(salary, percent float64) float64 {
	return salary + (salary*percent)/100
}

// AddFn is the shape of a binary amount combiner
type AddFn func(x, y float64) float64

// Add sums two amounts
var Add AddFn = func(x, y float64) float64 { return x + y }
