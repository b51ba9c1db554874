package typeref

import "reflect"

// Of returns the reflect.Type of T without needing a value of it.
// Unlike reflect.TypeOf(zero), this keeps interface types intact.
func Of[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// FuncPointer returns the code pointer of fn, or 0 if fn is not a
// callable function value. Used for sentinel identity checks.
func FuncPointer(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0
	}
	return v.Pointer()
}
