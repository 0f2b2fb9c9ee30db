// File: internal/logging/logging.go
// Author: momentics <momentics@gmail.com>
//
// Logger construction shared by the facade and the CLI. The library is
// silent by default; Debug switches on zap's development output.

package logging

import "go.uber.org/zap"

// New returns the logger for the given debug setting. Construction
// never fails the caller: if the development logger cannot be built,
// the nop logger is returned instead.
func New(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
