package utils

import "go.uber.org/zap"

var Logger = zap.NewNop()

// InitLogger builds the production logger, writing to stdout, and stores it in Logger.
func InitLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	Logger = logger
	return logger, nil
}
