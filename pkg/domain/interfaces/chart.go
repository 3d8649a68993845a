package interfaces

import (
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// ChartInstance is a chart bound to a canvas slot
type ChartInstance interface {
	Canvas() types.ChartName
	Spec() *model.ChartSpec
	Alive() bool

	// Destroy releases the canvas. Destroying twice is a no-op.
	Destroy() error
}

// ChartFactory creates chart instances from declarative specs
type ChartFactory interface {
	NewChart(canvas types.ChartName, spec *model.ChartSpec) (ChartInstance, error)
}
