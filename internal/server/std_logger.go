package server

import (
	"log"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/rs/zerolog"
)

// newStdLogger routes net/http's internal error log through zerolog.
func newStdLogger(l *logger.Logger) *log.Logger {
	return log.New(l.Level(zerolog.WarnLevel).With().Str("component", "net/http").Logger(), "", 0)
}
