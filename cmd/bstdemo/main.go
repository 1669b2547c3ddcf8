// Command bstdemo exercises the map against a fixed scenario and prints the
// final rendering. It exits non-zero on the first violated expectation.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/e11jah/bstmap"
)

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	m := bstmap.New[int, string]()
	if !m.IsEmpty() {
		fail("new map not empty")
	}

	words := map[int]string{
		4: "four", 5: "five", 3: "three", 1: "one",
		6: "six", 0: "zero", 7: "seven", 2: "two",
	}
	for _, k := range []int{4, 5, 3, 1, 6, 0, 7, 2} {
		m.Put(k, words[k])
	}
	if m.Size() != 8 {
		fail("size after inserts = %d, want 8", m.Size())
	}

	v, ok, err := m.Remove(2)
	if err != nil || !ok || v != "two" {
		fail("remove(2) = %q, %v, %v", v, ok, err)
	}
	if _, ok, err := m.Remove(8); err != nil || ok {
		fail("remove(8) should report absence")
	}
	if _, _, err := m.Remove(4); !errors.Is(err, bstmap.ErrNotLeaf) {
		fail("remove(4) = %v, want ErrNotLeaf", err)
	}
	if m.Size() != 7 {
		fail("size after removals = %d, want 7", m.Size())
	}

	if v, ok := m.Get(5); !ok || v != "five" {
		fail("get(5) = %q, %v", v, ok)
	}
	if _, ok := m.Get(8); ok {
		fail("get(8) should report absence")
	}

	fmt.Println(m)
}
