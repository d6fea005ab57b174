package opaquebox

import (
	"reflect"
	"unsafe"
)

// noCopy makes `go vet` (copylocks) flag a Box copied by value, which would
// leave two owners of one allocation.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Box is an exclusive owner of one heap-allocated T.
//
// The handle is present from construction until Close and absent afterwards.
// unsafe.Sizeof(Box[T]{}) is always the size of one pointer.
//
// A Box is not safe for concurrent use; share the value it holds, not the Box.
type Box[T any] struct {
	noCopy noCopy
	handle *T
}

// Cloner lets a type control how Box.Clone copies it. Implement it when T
// holds slices, maps or pointers that must not be shared with the clone.
type Cloner[T any] interface {
	Clone() T
}

// New moves value onto the heap and returns its owning Box.
//
// The Box takes ownership: sub-resources of value such as string bytes or a
// slice's backing array are kept, not duplicated, and the caller must stop
// using them.
func New[T any](value T) *Box[T] {
	b := &Box[T]{handle: &value}

	recordAllocation(sizeOf[T]())

	return b
}

// Get returns the address of the owned value without copying it. Every call
// returns the same address. Callers must treat the value as read-only.
//
// Get panics with an *AccessError when the Box has been closed.
func (b *Box[T]) Get() *T {
	ptr, err := b.deref("Get")
	if err != nil {
		panic(err)
	}

	return ptr
}

// Lookup is Get without the panic: it returns ErrReleased (as an
// *AccessError) when the Box has been closed.
func (b *Box[T]) Lookup() (*T, error) {
	return b.deref("Lookup")
}

// Value returns a shallow copy of the owned value.
//
// Value panics with an *AccessError when the Box has been closed.
func (b *Box[T]) Value() T {
	ptr, err := b.deref("Value")
	if err != nil {
		panic(err)
	}

	return *ptr
}

// IsPresent reports whether the Box still owns its value.
func (b *Box[T]) IsPresent() bool {
	return b != nil && b.handle != nil
}

// Clone copies the owned value into a new allocation owned by a new Box.
// When T implements Cloner[T] its Clone method produces the copy, otherwise
// Go assignment semantics apply.
func (b *Box[T]) Clone() (*Box[T], error) {
	ptr, err := b.deref("Clone")
	if err != nil {
		return nil, err
	}

	return New(cloneValue(ptr)), nil
}

// Close releases the owned value. The value is zeroed so anything it
// references becomes collectable, and the handle becomes absent.
//
// Only the first call releases; later calls and calls on a nil Box are
// no-ops. Close never fails and returns an error only to satisfy io.Closer.
func (b *Box[T]) Close() error {
	if !b.IsPresent() {
		return nil
	}

	handle := b.handle

	var zero T
	*handle = zero
	b.handle = nil

	recordRelease(sizeOf[T]())
	traceRelease(handle)

	return nil
}

func (b *Box[T]) deref(operation string) (*T, error) {
	if !b.IsPresent() {
		err := &AccessError{Operation: operation, Type: typeName[T]()}
		reportAccessError(err)

		return nil, err
	}

	traceRead(b.handle)

	return b.handle, nil
}

func cloneValue[T any](ptr *T) T {
	if c, ok := any(ptr).(Cloner[T]); ok {
		return c.Clone()
	}

	if c, ok := any(*ptr).(Cloner[T]); ok {
		return c.Clone()
	}

	return *ptr
}

func sizeOf[T any]() uint64 {
	var zero T

	return uint64(unsafe.Sizeof(zero))
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
