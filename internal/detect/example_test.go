package detect_test

import (
	"fmt"

	"github.com/dbsmedya/goloop/internal/chain"
	"github.com/dbsmedya/goloop/internal/detect"
)

// ExampleTwoPointer builds A -> B -> C -> D -> B and asks the tortoise and hare
// whether it loops.
func ExampleTwoPointer() {
	c := chain.New()
	for _, v := range []string{"A", "B", "C", "D"} {
		c.Append(v)
	}
	_ = c.LoopBack(1)

	cyclic, err := detect.TwoPointer(c.Start())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cyclic)

	// Output: true
}

// ExampleAll runs every registered strategy on a fresh acyclic chain.
func ExampleAll() {
	for _, s := range detect.All() {
		c := chain.New()
		c.Append("A")
		c.Append("B")
		cyclic, _ := s.HasCycle(c.Start())
		fmt.Printf("%s: %v\n", s.Name, cyclic)
	}

	// Output:
	// mark: false
	// seen-set: false
	// back-reference: false
	// prefix-rescan: false
	// reversal: false
	// reversal-restore: false
	// checkpoint: false
	// two-pointer: false
}
