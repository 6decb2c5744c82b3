package logger

import "go.uber.org/zap"

// Log is the package-level logger. It defaults to a no-op logger so that
// library code and tests can log without initialization.
var Log = zap.NewNop()

// Initialize replaces the package logger with a production logger at the
// given level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = log
	return nil
}
