package ezprint

import (
	"fmt"
	"reflect"
)

// decompose plans a plain struct. Every field must be exported; blank "_"
// fields are padding and are skipped. The field count comes straight from
// reflection and is validated against the printer's ceiling once per type.
func (p *Printer) decompose(t reflect.Type) *plan {
	fields := make([]int, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}
		if !f.IsExported() {
			return &plan{kind: KindUnknown, all: -1, err: fmt.Errorf("%w: %s.%s", ErrUnexportedField, t, f.Name)}
		}
		fields = append(fields, i)
	}
	if len(fields) > p.maxFields {
		return &plan{kind: KindUnknown, all: -1, err: fmt.Errorf("%w: %s has %d fields, max %d", ErrFieldLimit, t, len(fields), p.maxFields)}
	}
	return &plan{kind: KindAggregate, all: -1, fields: fields}
}

// fieldList is the ordered view of a struct value's fields. Each entry is a
// reflect.Value aliasing the field; nothing is copied out of the struct.
type fieldList []reflect.Value

func fieldsOf(v reflect.Value, indexes []int) fieldList {
	out := make(fieldList, len(indexes))
	for i, idx := range indexes {
		out[i] = v.Field(idx)
	}
	return out
}

func (fl fieldList) at(i int) reflect.Value { return fl[i] }
