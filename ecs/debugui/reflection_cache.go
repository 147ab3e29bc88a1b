package debugui

import "reflect"

type fieldInfo struct {
	name      string
	typ       reflect.Type
	index     int
	isPointer bool
}

// fieldCache memoises exported-field layouts per component type so the
// inspector does not re-walk struct types every frame. The UI runs on one
// goroutine, same as the registry.
var fieldCache = map[reflect.Type][]fieldInfo{}

func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, fieldInfo{
				name:      field.Name,
				typ:       fieldType,
				index:     i,
				isPointer: isPointer,
			})
		}
	}

	fieldCache[t] = fields
	return fields
}
