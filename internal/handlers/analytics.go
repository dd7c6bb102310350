package handlers

import "github.com/jammehabdou64/documentation/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	Debug            bool
}

// AnalyticsFromConfig builds Analytics from loaded configuration. Dev mode turns on debug
// mode so local page views do not pollute reports.
func AnalyticsFromConfig(cfg config.Config) Analytics {
	return Analytics{
		GA4MeasurementID: cfg.Analytics.GA4MeasurementID,
		Debug:            cfg.Dev,
	}
}

// Enabled reports whether any analytics snippet should be emitted.
func (a Analytics) Enabled() bool {
	return a.GA4MeasurementID != ""
}
