package components

import (
	"context"

	"github.com/polarisui/polaris"
)

// FilterLabel renders the accessible label for a resource filter
// control, for example "Filter orders".
func FilterLabel(ctx context.Context, resource string) string {
	pc := polaris.CurrentContext(ctx)

	return pc.Polaris.Intl.TranslateWithMap(ctx, "Polaris.Filters.filterLabel",
		map[string]any{"Resource": resource})
}

// RemoveFilterLabel renders the accessible label for a filter's remove
// control.
func RemoveFilterLabel(ctx context.Context, filterName string) string {
	pc := polaris.CurrentContext(ctx)

	return pc.Polaris.Intl.TranslateWithMap(ctx, "Polaris.Filters.removeLabel",
		map[string]any{"FilterName": filterName})
}

// SelectedItemsCount renders the pluralized selection summary shown
// above a filtered resource list.
func SelectedItemsCount(ctx context.Context, count int) string {
	pc := polaris.CurrentContext(ctx)

	return pc.Polaris.Intl.TranslateWithMapAndCount(ctx, "Polaris.Filters.selectedItemsCount",
		map[string]any{"Count": count}, count)
}
