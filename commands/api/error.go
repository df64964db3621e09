// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"errors"
	"fmt"
)

var ErrEmptyCommand = errors.New("empty command")

// ErrUsage is wrapped by errors about missing or malformed arguments.
var ErrUsage = errors.New("usage")

func ErrUnknownCommand(input string) error {
	return fmt.Errorf("unknown command: %s", input)
}

// UsageError reports how a command should have been called.
func UsageError(usage string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage)
}
