package report

import "github.com/gofrs/uuid/v5"

// FilterSelection identifies a category, an effective date range, and the
// active account selection, for a downstream transaction list to consume.
type FilterSelection struct {
	CategoryID   uuid.UUID
	CategoryName string
	Window       Window
	AccountIDs   []uuid.UUID
}

// DrillDown builds the filter selection for a clicked category. When a
// YYYY-MM month key is given the effective range narrows to that month's
// first and last calendar day; otherwise, or when the key does not parse,
// the report's own window is used.
func DrillDown(categoryID uuid.UUID, categoryName, monthKey string, reportWindow Window, accountIDs []uuid.UUID) FilterSelection {
	window := reportWindow
	if monthKey != "" {
		if monthWindow, ok := MonthWindow(monthKey); ok {
			window = monthWindow
		}
	}
	return FilterSelection{
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Window:       window,
		AccountIDs:   accountIDs,
	}
}
