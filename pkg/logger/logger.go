package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Debug mode uses the human-readable
// development encoder; otherwise JSON production output.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
