package chart

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// Factory binds Chart.js specs to canvas slots. Like Chart.js, it refuses to bind
// a canvas that still holds a live chart.
type Factory struct {
	mu    sync.Mutex
	bound map[types.ChartName]*Instance
}

var _ interfaces.ChartFactory = (*Factory)(nil)

// NewFactory creates a new chart factory
func NewFactory() *Factory {
	return &Factory{
		bound: make(map[types.ChartName]*Instance),
	}
}

// NewChart creates a chart bound to the canvas
func (f *Factory) NewChart(canvas types.ChartName, spec *model.ChartSpec) (interfaces.ChartInstance, error) {
	if !canvas.IsValid() {
		return nil, goerr.New("unknown canvas", goerr.V("canvas", canvas))
	}
	if spec == nil {
		return nil, goerr.New("chart spec is nil", goerr.V("canvas", canvas))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if current, ok := f.bound[canvas]; ok && current.alive {
		return nil, goerr.Wrap(model.ErrCanvasInUse, "chart must be destroyed before the canvas can be reused",
			goerr.V("canvas", canvas))
	}

	inst := &Instance{
		factory: f,
		canvas:  canvas,
		spec:    spec.Copy(),
		alive:   true,
	}
	f.bound[canvas] = inst
	return inst, nil
}

// LiveCount returns the number of live charts bound to the canvas
func (f *Factory) LiveCount(canvas types.ChartName) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if inst, ok := f.bound[canvas]; ok && inst.alive {
		return 1
	}
	return 0
}

func (f *Factory) release(inst *Instance) {
	f.mu.Lock()
	defer f.mu.Unlock()

	inst.alive = false
	if f.bound[inst.canvas] == inst {
		delete(f.bound, inst.canvas)
	}
}

// Instance is a chart created by Factory
type Instance struct {
	factory *Factory
	canvas  types.ChartName
	spec    *model.ChartSpec
	alive   bool
}

// Canvas returns the canvas the chart is bound to
func (i *Instance) Canvas() types.ChartName {
	return i.canvas
}

// Spec returns a copy of the chart configuration
func (i *Instance) Spec() *model.ChartSpec {
	return i.spec.Copy()
}

// Alive reports whether the chart still holds its canvas
func (i *Instance) Alive() bool {
	i.factory.mu.Lock()
	defer i.factory.mu.Unlock()
	return i.alive
}

// Destroy releases the canvas
func (i *Instance) Destroy() error {
	i.factory.release(i)
	return nil
}
