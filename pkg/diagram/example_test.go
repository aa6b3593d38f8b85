package diagram_test

import (
	"fmt"

	"github.com/matzehuels/automatagraph/pkg/diagram"
)

func ExampleNew() {
	d := diagram.New("two_states", "two").
		Node("s", "start").
		Node("t", "stop").
		Edge("s", "t", "go")

	fmt.Println("Nodes:", d.NodeCount())
	fmt.Println("Edges:", d.EdgeCount())
	// Output:
	// Nodes: 2
	// Edges: 1
}

func ExampleBuiltins() {
	for _, d := range diagram.Builtins() {
		fmt.Printf("%s.png <- %s (%d states, %d transitions)\n", d.File, d.Name, d.NodeCount(), d.EdgeCount())
	}
	// Output:
	// fsm.png <- finite_state_machine (3 states, 5 transitions)
	// pda.png <- pushdown_automaton (3 states, 3 transitions)
	// tm.png <- turing_machine (3 states, 3 transitions)
}

func ExampleLint() {
	d := diagram.New("g", "g").Node("a", "A").Edge("a", "b", "")
	for _, issue := range diagram.Lint(d) {
		fmt.Println(issue.Kind)
	}
	// Output:
	// undeclared-node
	// empty-edge-label
}
