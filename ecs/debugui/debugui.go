// Package debugui provides immediate-mode GUI inspection windows for a
// registry using Dear ImGui: an entity browser, a per-pool inspector, a
// component inspector driven by reflection, and a performance stats window.
package debugui

import (
	"github.com/plus3/composia/ecs"
)

// Overlay bundles the inspection windows and renders them against a registry
// once per frame. Zero values of the window toggles mean "shown".
type Overlay struct {
	EntityBrowser      EntityBrowserWindow
	PoolInspector      PoolInspectorWindow
	ComponentInspector ComponentInspectorWindow
	PerformanceStats   PerformanceStatsWindow

	timer frameTimer
}

// NewOverlay creates an overlay with default window settings.
func NewOverlay() *Overlay {
	return &Overlay{
		EntityBrowser:    NewEntityBrowserWindow(100),
		PerformanceStats: NewPerformanceStatsWindow(120),
		timer:            newFrameTimer(),
	}
}

// Render draws all windows. Call between the ImGui backend's BeginFrame and
// EndFrame.
func (o *Overlay) Render(reg *ecs.Registry) {
	dt := o.timer.deltaTime()

	o.EntityBrowser.Render(reg)
	o.PoolInspector.Render(reg)
	o.ComponentInspector.Render(reg, o.EntityBrowser.SelectedEntity())
	o.PerformanceStats.Render(reg, dt)
}
