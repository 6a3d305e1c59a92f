package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentFiscalYear_BeforeApril(t *testing.T) {
	w := CurrentFiscalYear(time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-04-01", w.StartString())
	assert.Equal(t, "2025-03-31", w.EndString())
}

func TestCurrentFiscalYear_AfterApril(t *testing.T) {
	w := CurrentFiscalYear(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-04-01", w.StartString())
	assert.Equal(t, "2026-03-31", w.EndString())
}

func TestCurrentFiscalYear_Boundaries(t *testing.T) {
	aprilFirst := CurrentFiscalYear(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-04-01", aprilFirst.StartString())
	assert.Equal(t, "2026-03-31", aprilFirst.EndString())

	marchLast := CurrentFiscalYear(time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2025-04-01", marchLast.StartString())
	assert.Equal(t, "2026-03-31", marchLast.EndString())
}

func TestMonthWindow(t *testing.T) {
	w, ok := MonthWindow("2025-02")
	assert.True(t, ok)
	assert.Equal(t, "2025-02-01", w.StartString())
	assert.Equal(t, "2025-02-28", w.EndString())

	leap, ok := MonthWindow("2024-02")
	assert.True(t, ok)
	assert.Equal(t, "2024-02-29", leap.EndString())
}

func TestMonthWindow_Invalid(t *testing.T) {
	_, ok := MonthWindow("not-a-month")
	assert.False(t, ok)

	_, ok = MonthWindow("")
	assert.False(t, ok)
}
