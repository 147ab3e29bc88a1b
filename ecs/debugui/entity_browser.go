package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/composia/ecs"
)

type entityInfo struct {
	entity         ecs.Entity
	generation     uint32
	componentTypes []string
}

// EntityBrowserWindow lists every alive entity with its component set, with
// text filtering, paging and row selection feeding the component inspector.
type EntityBrowserWindow struct {
	entities   []entityInfo
	selected   ecs.Entity
	hasChoice  bool
	filterText string

	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowserWindow(maxEntitiesPerPage int) EntityBrowserWindow {
	return EntityBrowserWindow{maxEntitiesPerPage: maxEntitiesPerPage}
}

// SelectedEntity returns the currently selected entity, or InvalidEntity.
func (eb *EntityBrowserWindow) SelectedEntity() ecs.Entity {
	if !eb.hasChoice {
		return ecs.InvalidEntity
	}
	return eb.selected
}

func (eb *EntityBrowserWindow) Render(reg *ecs.Registry) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuild(reg)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		filtered := eb.filteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		if startIdx >= len(filtered) {
			startIdx = 0
			eb.currentPage = 0
		}
		endIdx := startIdx + eb.maxEntitiesPerPage
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for i := startIdx; i < endIdx; i++ {
			info := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasChoice && eb.selected == info.entity
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.entity), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = info.entity
				eb.hasChoice = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.generation))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.componentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(info.componentTypes)))
		}

		imgui.EndTable()

		if len(filtered) > eb.maxEntitiesPerPage {
			totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
			imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
			imgui.SameLine()
			if imgui.Button("Prev") && eb.currentPage > 0 {
				eb.currentPage--
			}
			imgui.SameLine()
			if imgui.Button("Next") && eb.currentPage < totalPages-1 {
				eb.currentPage++
			}
		} else {
			imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
		}
	}

	imgui.End()
}

func (eb *EntityBrowserWindow) rebuild(reg *ecs.Registry) {
	eb.entities = eb.entities[:0]
	for e := range reg.Entities() {
		eb.entities = append(eb.entities, entityInfo{
			entity:         e,
			generation:     reg.Generation(e),
			componentTypes: reg.ComponentTypeNames(e),
		})
	}

	if eb.hasChoice && !reg.IsAlive(eb.selected) {
		eb.hasChoice = false
	}
}

func (eb *EntityBrowserWindow) filteredEntities() []entityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]entityInfo, 0, len(eb.entities))

	for _, info := range eb.entities {
		idStr := fmt.Sprintf("%d", info.entity)
		componentsStr := strings.ToLower(strings.Join(info.componentTypes, " "))

		if strings.Contains(idStr, filterLower) || strings.Contains(componentsStr, filterLower) {
			filtered = append(filtered, info)
		}
	}

	return filtered
}
