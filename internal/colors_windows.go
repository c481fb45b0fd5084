//go:build windows

package internal

import "fmt"

// Color functions for emphasising text.
var Emph = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}

var Warn = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}

var Fail = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}
