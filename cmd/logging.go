package root

import (
	"fmt"

	"github.com/alban/claunch/pkg/common"
)

// setupLogger initializes the global logger based on command-line flags
func setupLogger() (*common.Logger, error) {
	level := common.LogLevelFromString(logLevel)

	logger, err := common.NewLogger("["+ApplicationName+"] ", logFile, level)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	common.SetLogger(logger)
	return logger, nil
}
