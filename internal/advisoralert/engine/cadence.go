package engine

// shouldEscalate is the periodic email cadence shared by the age based rules:
// the first email goes out on day start, then one every interval days.
func shouldEscalate(daysSince, start, interval int) bool {
	if daysSince < start || interval <= 0 {
		return false
	}
	return (daysSince-start)%interval == 0
}

const (
	invoiceMinDays      = 7
	invoiceCriticalDays = 14
	invoiceEmailEvery   = 3

	prospectMinDays     = 3
	prospectWarningDays = 6
	prospectEmailEvery  = 3

	clientEmailLastDay = 3

	endWindowDays      = 20
	endCriticalDays    = 10
	endEmailDaysBefore = 20

	stageCriticalExtraDays = 3
)
