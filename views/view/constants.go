// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

// View names shown in the breadcrumb bar
const (
	NameHome    = "home"
	NameHelp    = "help"
	NameMissing = "missing"
)
