package filterlist

// ApplyFilter recomputes Filtered from Items and Query and clamps the cursor.
func (f *FilterableList[T]) ApplyFilter() {
	f.Filtered = f.Items
	if f.Query != "" && f.Match != nil {
		f.Filtered = nil
		for _, item := range f.Items {
			if f.Match(item, f.Query) {
				f.Filtered = append(f.Filtered, item)
			}
		}
	}

	f.Cursor = max(min(f.Cursor, len(f.Filtered)-1), 0)
	f.ensureCursorVisible()
}

// clearFilter drops the query and jumps back to the first item.
func (f *FilterableList[T]) clearFilter() {
	f.Query = ""
	f.Filtered = f.Items
	f.Cursor = 0
	f.Viewport.GotoTop()
}
