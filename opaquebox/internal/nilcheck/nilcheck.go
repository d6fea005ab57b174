// Package nilcheck detects nil dependencies hidden behind interfaces.
package nilcheck

import "reflect"

var nilable = map[reflect.Kind]bool{
	reflect.Pointer:   true,
	reflect.Interface: true,
	reflect.Map:       true,
	reflect.Slice:     true,
	reflect.Chan:      true,
	reflect.Func:      true,
}

// IsNil reports whether dep is nil or wraps a nil value, such as a nil
// *zap.Logger passed as a log.Logger or a nil meter implementation.
func IsNil(dep any) bool {
	if dep == nil {
		return true
	}

	v := reflect.ValueOf(dep)

	return nilable[v.Kind()] && v.IsNil()
}
