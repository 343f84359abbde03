package module

import "reflect"

// PortSet is whatever a module hands out from Ports, usually a struct of interfaces
type PortSet = any

// PortsOf finds a T in m's port set
// the set itself may implement T, or any exported non nil field of a struct
// (or pointer to struct) may
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}

	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() || isNilish(f) {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

func isNilish(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// MustPortsOf is PortsOf for wiring code, it panics when the port is missing
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		var zero T
		panic("module: " + m.Name() + " does not provide " + reflect.TypeOf(&zero).Elem().String())
	}
	return v
}
