package report

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestDrillDown_MonthCell(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	sel := DrillDown(categoryID, "Food", "2025-02", testWindow(), []uuid.UUID{accountID})

	assert.Equal(t, categoryID, sel.CategoryID)
	assert.Equal(t, "Food", sel.CategoryName)
	assert.Equal(t, "2025-02-01", sel.Window.StartString())
	assert.Equal(t, "2025-02-28", sel.Window.EndString())
	assert.Equal(t, []uuid.UUID{accountID}, sel.AccountIDs)
}

func TestDrillDown_WholeCategory(t *testing.T) {
	sel := DrillDown(uuid.Must(uuid.NewV4()), "Food", "", testWindow(), nil)

	assert.Equal(t, testWindow(), sel.Window)
}

func TestDrillDown_BadMonthFallsBack(t *testing.T) {
	sel := DrillDown(uuid.Must(uuid.NewV4()), "Food", "Feb-2025", testWindow(), nil)

	assert.Equal(t, testWindow(), sel.Window, "unparseable month keys fall back to the report window")
}
