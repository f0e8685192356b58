// SPDX-License-Identifier: MIT
package maxheap_test

import (
	"fmt"

	"github.com/katalvlaran/vicinity/maxheap"
)

// ExampleHeap shows handle-based updates and deletes.
func ExampleHeap() {
	h := maxheap.New[string](3)
	a, _ := h.Insert(5, "a")
	b, _ := h.Insert(9, "b")
	_, _ = h.Insert(7, "c")

	top, _ := h.Peek()
	fmt.Println(h.Payload(top), h.Key(top))

	// Raise a above everything, then remove b.
	h.Update(a, 12)
	h.Delete(b)
	top, _ = h.Peek()
	fmt.Println(h.Payload(top), h.Key(top), h.Len())

	// Output:
	// b 9
	// a 12 2
}
