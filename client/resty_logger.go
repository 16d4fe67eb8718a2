package client

import "github.com/rs/zerolog/log"

// restyLogger routes resty's internal messages to zerolog.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) { log.Error().Msgf("resty: "+format, v...) }
func (restyLogger) Warnf(format string, v ...any)  { log.Warn().Msgf("resty: "+format, v...) }
func (restyLogger) Debugf(format string, v ...any) { log.Debug().Msgf("resty: "+format, v...) }
