package chart

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// Registry owns the single live chart of every canvas slot
type Registry struct {
	mu      sync.Mutex
	factory interfaces.ChartFactory
	charts  map[types.ChartName]interfaces.ChartInstance
}

// NewRegistry creates a registry creating charts with the factory
func NewRegistry(factory interfaces.ChartFactory) *Registry {
	return &Registry{
		factory: factory,
		charts:  make(map[types.ChartName]interfaces.ChartInstance),
	}
}

// Render releases the chart currently bound to the canvas and creates a new one from spec
func (r *Registry) Render(name types.ChartName, spec *model.ChartSpec) (interfaces.ChartInstance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.releaseLocked(name); err != nil {
		return nil, err
	}

	inst, err := r.factory.NewChart(name, spec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create chart", goerr.V("chart", name))
	}
	r.charts[name] = inst
	return inst, nil
}

// Replace installs inst for its canvas after releasing the previous instance
func (r *Registry) Replace(name types.ChartName, inst interfaces.ChartInstance) error {
	if inst == nil {
		return goerr.New("chart instance is nil", goerr.V("chart", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.charts[name]; ok && current == inst {
		return nil
	}
	if err := r.releaseLocked(name); err != nil {
		return err
	}
	r.charts[name] = inst
	return nil
}

// Get returns the live chart of the canvas
func (r *Registry) Get(name types.ChartName) (interfaces.ChartInstance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.charts[name]
	return inst, ok
}

// Release destroys the chart of the canvas, if any
func (r *Registry) Release(name types.ChartName) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.releaseLocked(name)
}

// Close releases every chart
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name := range r.charts {
		if err := r.releaseLocked(name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) releaseLocked(name types.ChartName) error {
	current, ok := r.charts[name]
	if !ok {
		return nil
	}
	if err := current.Destroy(); err != nil {
		return goerr.Wrap(err, "failed to destroy chart", goerr.V("chart", name))
	}
	delete(r.charts, name)
	return nil
}
