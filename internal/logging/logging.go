package logging

import "go.uber.org/zap"

// New returns a sugared logger. "prod" selects JSON output, anything else
// gets the human-readable development encoder.
func New(mode string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "prod" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
