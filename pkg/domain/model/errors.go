package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for dashboard operations
var (
	ErrChartNotRendered = goerr.New("chart not rendered yet")
	ErrCanvasInUse      = goerr.New("canvas is already in use")
)
