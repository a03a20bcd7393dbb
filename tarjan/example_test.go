package tarjan_test

import (
	"fmt"

	"github.com/katalvlaran/duograph/core"
	"github.com/katalvlaran/duograph/tarjan"
)

// ExampleSCCs collapses a 3-cycle into one component and leaves the
// tail nodes alone.
//
//	b → a → c → b    a → d → e
func ExampleSCCs() {
	g := core.NewDiGraph[string, uint]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	e := g.AddNode("e")
	_ = g.AddEdge(b, a, 1)
	_ = g.AddEdge(a, c, 1)
	_ = g.AddEdge(c, b, 1)
	_ = g.AddEdge(a, d, 1)
	_ = g.AddEdge(d, e, 1)

	labels, err := tarjan.SCCs(g)
	if err != nil {
		fmt.Println("labeling failed:", err)
		return
	}
	fmt.Println("same component:", labels[a] == labels[b])
	for _, comp := range tarjan.Components(labels) {
		names := make([]string, len(comp))
		for i, u := range comp {
			names[i], _ = g.Value(u)
		}
		fmt.Println(names)
	}
	// Output:
	// same component: true
	// [a b c]
	// [d]
	// [e]
}
