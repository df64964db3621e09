package filterlist

import tea "github.com/charmbracelet/bubbletea"

// HandleKey moves the cursor or edits the filter. It reports whether the
// key was consumed.
func (f *FilterableList[T]) HandleKey(msg tea.KeyMsg) bool {
	if f.Mode == ModeSearching {
		return f.handleSearchKey(msg)
	}

	page := max(f.Viewport.Height, 1)
	switch msg.String() {
	case "up", "k":
		f.moveTo(f.Cursor - 1)
	case "down", "j":
		f.moveTo(f.Cursor + 1)
	case "pgup", "u":
		f.moveTo(f.Cursor - page)
	case "pgdown", "d":
		f.moveTo(f.Cursor + page)
	case "home", "g":
		f.moveTo(0)
	case "end", "G":
		f.moveTo(len(f.Filtered) - 1)
	case "/":
		if f.Match == nil {
			return false
		}
		f.Mode = ModeSearching
		f.clearFilter()
	default:
		return false
	}
	return true
}

func (f *FilterableList[T]) handleSearchKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		f.Query += string(msg.Runes)
	case tea.KeyBackspace:
		if r := []rune(f.Query); len(r) > 0 {
			f.Query = string(r[:len(r)-1])
		}
	case tea.KeyEnter:
		f.Mode = ModeNormal
		return true
	case tea.KeyEsc:
		f.Mode = ModeNormal
		f.clearFilter()
		return true
	default:
		return false
	}
	f.ApplyFilter()
	return true
}

func (f *FilterableList[T]) moveTo(i int) {
	f.Cursor = max(min(i, len(f.Filtered)-1), 0)
	f.ensureCursorVisible()
}
