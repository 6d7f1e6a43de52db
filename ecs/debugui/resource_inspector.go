package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/traitres"
)

// ResourceInspectorPanel shows and edits the exported fields of the selected resource.
type ResourceInspectorPanel struct {
	traitres.Resource
}

func NewResourceInspectorPanel() ResourceInspectorPanel {
	return ResourceInspectorPanel{}
}

func (ri *ResourceInspectorPanel) Render(storage *ecs.Storage, deltaTime float32) {
	if !imgui.BeginV("Resource Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	selection := ecs.GetSingleton[ResourceSelection](storage)
	if selection == nil || selection.Id == 0 {
		imgui.Text("No resource selected")
		return
	}

	value, resType, ok := selectedValue(storage, selection.Id)
	if !ok {
		if resType != nil {
			imgui.Text(fmt.Sprintf("%s is no longer stored", resType))
		} else {
			imgui.Text(fmt.Sprintf("Unknown resource %d", selection.Id))
		}
		return
	}

	imgui.Text(fmt.Sprintf("Resource: %s (id %d)", resType, selection.Id))
	imgui.Separator()

	for _, field := range globalReflectionCache.GetFields(resType) {
		fieldVal := value.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		renderField(field.Name, fieldVal)
	}
}

// selectedValue returns an addressable view of the singleton with the given identity.
func selectedValue(storage *ecs.Storage, id ecs.ResourceId) (reflect.Value, reflect.Type, bool) {
	resType := storage.SingletonTypeById(id)
	if resType == nil {
		return reflect.Value{}, nil, false
	}
	ptr, ok := storage.GetSingletonById(id)
	if !ok {
		return reflect.Value{}, resType, false
	}
	return reflect.NewAt(resType, ptr).Elem(), resType, true
}

// renderField draws an editor for val, writing edits straight into storage.
func renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		if inputLabel(name); imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		if inputLabel(name); imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		if inputLabel(name); imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		inputLabel(name)
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range globalReflectionCache.GetFields(val.Type()) {
				nested := val.Field(nf.Index)
				if nf.IsPointer && !nested.IsNil() {
					nested = nested.Elem()
				}
				renderField(nf.Name, nested)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Type()))
		}
	}
}

func inputLabel(name string) {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
}
