// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package commands registers every palette command when imported.
package commands

import (
	_ "goway/commands/command"
)
