package opaquebox

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// fieldLabel names the owned value in every debug rendering.
const fieldLabel = "large_data_on_the_heap"

const absentValue = "<nil>"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Format implements fmt.Formatter. %#v renders GoString; every other
// directive, including its flags, width and precision, is applied to the
// owned value inside the Box{large_data_on_the_heap: ...} wrapper:
//
//	%v    Box{large_data_on_the_heap: hello}
//	%q    Box{large_data_on_the_heap: "hello"}
//	%.3s  Box{large_data_on_the_heap: hel}
//
// Formatting never traces a read and never moves the value.
func (b *Box[T]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, b.GoString())

		return
	}

	_, _ = io.WriteString(f, b.render(fmt.FormatString(f, verb)))
}

// String renders the Box the same way as %v.
func (b *Box[T]) String() string {
	return b.render("%v")
}

// GoString implements fmt.GoStringer using the value's own %#v rendering.
func (b *Box[T]) GoString() string {
	value := absentValue
	if b.IsPresent() {
		value = fmt.Sprintf("%#v", *b.handle)
	}

	return "opaquebox.Box[" + typeName[T]() + "]{" + fieldLabel + ": " + value + "}"
}

// Dump returns a multi-line rendering of the owned value with types and
// lengths, for debugging large nested values.
func (b *Box[T]) Dump() string {
	if !b.IsPresent() {
		return "Box{\n  " + fieldLabel + ": " + absentValue + "\n}"
	}

	dumped := strings.TrimRight(dumpConfig.Sdump(*b.handle), "\n")

	return "Box{\n  " + fieldLabel + ": " + strings.ReplaceAll(dumped, "\n", "\n  ") + "\n}"
}

func (b *Box[T]) render(directive string) string {
	value := absentValue
	if b.IsPresent() {
		value = fmt.Sprintf(directive, *b.handle)
	}

	return "Box{" + fieldLabel + ": " + value + "}"
}
