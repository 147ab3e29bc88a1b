package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/composia/ecs"
)

// PoolInspectorWindow lists every materialised component pool with its size,
// sortable by type name or size, with a proportional fill bar per row.
type PoolInspectorWindow struct {
	sortColumn    int
	sortAscending bool
}

func (pi *PoolInspectorWindow) Render(reg *ecs.Registry) {
	if !imgui.BeginV("Pool Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := reg.PoolStats()
	pi.sortStats(stats)

	maxSize := 0
	for _, s := range stats {
		if s.Size > maxSize {
			maxSize = s.Size
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("PoolTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component Type")
		imgui.TableSetupColumn("Size")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			pi.sortColumn = int(spec.ColumnIndex())
			pi.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			pi.sortStats(stats)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, s := range stats {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(s.Type)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.Size))

			if maxSize > 0 {
				barWidth := float32(s.Size) / float32(maxSize) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("%d pools, %d alive entities", reg.PoolCount(), reg.EntityCount()))

	imgui.End()
}

func (pi *PoolInspectorWindow) sortStats(stats []ecs.PoolStat) {
	sort.Slice(stats, func(i, j int) bool {
		var less bool
		switch pi.sortColumn {
		case 0:
			less = stats[i].Type < stats[j].Type
		default:
			less = stats[i].Size < stats[j].Size
		}
		if !pi.sortAscending {
			return !less
		}
		return less
	})
}
