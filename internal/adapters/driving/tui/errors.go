package tui

import "errors"

// ErrMissingAnalyticsService is returned when the analytics service is not provided.
var ErrMissingAnalyticsService = errors.New("tui: analytics service is required")
