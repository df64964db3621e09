// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import "goway/destination"

// NavigateToMsg asks the app to push Destination, or to swap it for the
// current top when Replace is set.
type NavigateToMsg struct {
	Destination destination.Destination
	Replace     bool
}

// NavigateBackMsg pops Levels entries; zero is a no-op.
type NavigateBackMsg struct {
	Levels int
}

// PopToMsg pops entries until Destination itself has been removed.
type PopToMsg struct {
	Destination destination.Destination
}

// NavigateRootMsg empties the stack.
type NavigateRootMsg struct{}

// SearchMsg opens the search screen with Query.
type SearchMsg struct {
	Query string
}

// CancelNavigationMsg asks to drop the request the coordinator holds.
type CancelNavigationMsg struct{}
