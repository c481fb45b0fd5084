//go:build !windows

package internal

import "github.com/fatih/color"

// Color functions for emphasising text.
var Emph = color.New(color.FgCyan, color.Bold).SprintFunc()

var Warn = color.New(color.FgYellow, color.Bold).SprintFunc()

var Fail = color.New(color.FgRed, color.Bold).SprintFunc()
