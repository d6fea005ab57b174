package opaquebox_test

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/LerianStudio/lib-opaquebox/opaquebox"
)

type account struct {
	ID      string
	Balance int64
	History [128]int64
}

func ExampleNew() {
	b := opaquebox.New("hello world")
	defer b.Close()

	fmt.Println(*b.Get())
	fmt.Println(unsafe.Sizeof(*b) == unsafe.Sizeof(uintptr(0)))

	// Output:
	// hello world
	// true
}

func Example_format() {
	text := opaquebox.New("hello")
	defer text.Close()

	name := opaquebox.New(struct{ First, Last string }{"A", "B"})
	defer name.Close()

	fmt.Printf("%v\n", text)
	fmt.Printf("%#v\n", name)

	// Output:
	// Box{large_data_on_the_heap: hello}
	// opaquebox.Box[struct { First string; Last string }]{large_data_on_the_heap: struct { First string; Last string }{First:"A", Last:"B"}}
}

func Example_lookup() {
	b := opaquebox.New(account{ID: "acc-1"})
	_ = b.Close()

	_, err := b.Lookup()

	fmt.Println(errors.Is(err, opaquebox.ErrReleased))

	// Output:
	// true
}

func Example_clone() {
	original := opaquebox.New(account{ID: "acc-1", Balance: 100})
	defer original.Close()

	clone, err := original.Clone()
	if err != nil {
		fmt.Println(err)

		return
	}
	defer clone.Close()

	fmt.Println(clone.Get().ID, original.Get() != clone.Get())

	// Output:
	// acc-1 true
}
