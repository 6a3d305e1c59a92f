package report

import "time"

const (
	// DateLayout is the YYYY-MM-DD layout used on every report boundary.
	DateLayout = "2006-01-02"

	monthLayout = "2006-01"
)

// Window is a closed reporting date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// StartString returns the window start formatted as YYYY-MM-DD.
func (w Window) StartString() string {
	return w.Start.Format(DateLayout)
}

// EndString returns the window end formatted as YYYY-MM-DD.
func (w Window) EndString() string {
	return w.End.Format(DateLayout)
}

// IsZero reports whether either bound of the window is unset.
func (w Window) IsZero() bool {
	return w.Start.IsZero() || w.End.IsZero()
}

// CurrentFiscalYear returns the fiscal year window containing today.
// The fiscal year runs April 1 through March 31: in January through March
// the window started the previous April. This is the default filter seed
// for reports with no explicit window and must be recomputed per request,
// never cached across calendar boundaries.
func CurrentFiscalYear(today time.Time) Window {
	year := today.Year()
	if today.Month() < time.April {
		year--
	}
	return Window{
		Start: time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year+1, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
}

// MonthWindow returns the first-to-last calendar day window of a YYYY-MM
// month key. The second return is false when the key does not parse.
func MonthWindow(key string) (Window, bool) {
	t, err := time.Parse(monthLayout, key)
	if err != nil {
		return Window{}, false
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}, true
}
