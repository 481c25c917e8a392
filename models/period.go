package models

type PeriodType string

const (
	PeriodTypeDaily     PeriodType = "Daily"
	PeriodTypeWeekly    PeriodType = "Weekly"
	PeriodTypeMonthly   PeriodType = "Monthly"
	PeriodTypeQuarterly PeriodType = "Quarterly"
	PeriodTypeYearly    PeriodType = "Yearly"
)

// Period is a coded time bucket. Code is the stable external identifier ("202401", "2024Q1").
type Period struct {
	Id         string
	Code       string
	Name       string
	PeriodType PeriodType
}

func (t PeriodType) IsValid() bool {
	switch t {
	case PeriodTypeDaily, PeriodTypeWeekly, PeriodTypeMonthly, PeriodTypeQuarterly, PeriodTypeYearly:
		return true
	}
	return false
}
