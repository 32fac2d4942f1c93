package server

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/log"
)

// renderLogger implements core.Logger, tagging progress messages with a render ID
// so concurrent renders can be told apart in the server log
type renderLogger struct {
	renderID string
	logger   log.Logger
}

// newRenderLogger creates a progress logger for a specific render
func newRenderLogger(renderID string, logger log.Logger) core.Logger {
	return &renderLogger{
		renderID: renderID,
		logger:   logger,
	}
}

// Debugf implements core.Logger
func (rl *renderLogger) Debugf(format string, args ...interface{}) {
	rl.logger.Debugf("%s: "+format, rl.prepend(args)...)
}

// Infof implements core.Logger
func (rl *renderLogger) Infof(format string, args ...interface{}) {
	rl.logger.Infof("%s: "+format, rl.prepend(args)...)
}

func (rl *renderLogger) prepend(args []interface{}) []interface{} {
	return append([]interface{}{rl.renderID}, args...)
}
