package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/traitres"
)

// ResourceSelection is the singleton shared by the registry viewer and the resource inspector.
type ResourceSelection struct {
	Id ecs.ResourceId
}

// RegistryViewerPanel lists every trait registry and its entries, flagging stale ones.
type RegistryViewerPanel struct {
	traitres.Resource
	showStaleOnly bool
}

func NewRegistryViewerPanel() RegistryViewerPanel {
	return RegistryViewerPanel{}
}

func (rv *RegistryViewerPanel) Render(storage *ecs.Storage, deltaTime float32) {
	if !imgui.BeginV("Trait Registries", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	selection := ecs.GetOrInsertSingleton(storage, func() ResourceSelection { return ResourceSelection{} })
	registries := traitres.Registries(storage)

	imgui.Checkbox("Stale only", &rv.showStaleOnly)
	imgui.Separator()

	if len(registries) == 0 {
		imgui.Text("No trait registries")
		imgui.End()
		return
	}

	for _, info := range registries {
		label := fmt.Sprintf("%s (%d entries, %d stale)", info.Trait, len(info.Entries), info.Stale())
		if !imgui.TreeNodeStr(label) {
			continue
		}

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("Entries##"+info.Trait, 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Id")
			imgui.TableSetupColumn("Resource")
			imgui.TableSetupColumn("State")
			imgui.TableHeadersRow()

			for _, entry := range rowsFor(info, rv.showStaleOnly) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				isSelected := selection.Id == entry.Id
				if imgui.SelectableBoolV(fmt.Sprintf("%d##%s", entry.Id, info.Trait), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
					selection.Id = entry.Id
				}
				imgui.TableNextColumn()
				imgui.Text(entry.Resource)
				imgui.TableNextColumn()
				imgui.Text(entryState(entry))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func rowsFor(info traitres.RegistryInfo, staleOnly bool) []traitres.EntryInfo {
	if !staleOnly {
		return info.Entries
	}
	var rows []traitres.EntryInfo
	for _, e := range info.Entries {
		if !e.Present {
			rows = append(rows, e)
		}
	}
	return rows
}

func entryState(e traitres.EntryInfo) string {
	if e.Present {
		return "present"
	}
	return "absent"
}
