package logger

import (
	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func Debug() *zerolog.Event { return Logger.Debug() }
