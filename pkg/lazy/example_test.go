package lazy_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/vosi/pkg/lazy"
)

func ExampleCell() {
	var cell lazy.Cell[string]
	calls := 0

	// A failed computation leaves the cell empty.
	_, err := cell.Get(func() (string, error) {
		calls++
		return "", errors.New("unavailable")
	})
	fmt.Println("first:", err, cell.Loaded())

	// The next access computes again; after that the value is kept.
	for range 2 {
		v, _ := cell.Get(func() (string, error) {
			calls++
			return "ready", nil
		})
		fmt.Println("value:", v)
	}
	fmt.Println("calls:", calls)
	// Output:
	// first: unavailable false
	// value: ready
	// value: ready
	// calls: 2
}
