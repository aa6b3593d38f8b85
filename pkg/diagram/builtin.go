package diagram

import "strings"

// FSM returns the finite-state machine diagram: three states over the
// alphabet {0, 1} with C absorbing.
func FSM() *Diagram {
	return New("finite_state_machine", "fsm").
		WithTitle("Finite-state machine").
		Node("A", "State A").
		Node("B", "State B").
		Node("C", "State C").
		Edge("A", "B", "0").
		Edge("A", "C", "1").
		Edge("B", "A", "0").
		Edge("B", "C", "1").
		Edge("C", "C", "0,1")
}

// PDA returns the pushdown automaton diagram. Labels read
// "input, pop → push".
func PDA() *Diagram {
	return New("pushdown_automaton", "pda").
		WithTitle("Pushdown automaton").
		Node("q0", "q0").
		Node("q1", "q1").
		Node("q2", "q2").
		Edge("q0", "q1", "a, ε → A").
		Edge("q1", "q1", "b, A → ε").
		Edge("q1", "q2", "ε, $ → ε")
}

// TM returns the Turing machine diagram. Labels read
// "read → write, move".
func TM() *Diagram {
	return New("turing_machine", "tm").
		WithTitle("Turing machine").
		Node("q0", "q0").
		Node("q1", "q1").
		Node("q2", "q2").
		Edge("q0", "q1", "a → X, R").
		Edge("q1", "q1", "b → Y, R").
		Edge("q1", "q2", "c → Z, L")
}

// Builtins returns fresh copies of the built-in diagrams in drawing order.
func Builtins() []*Diagram {
	return []*Diagram{FSM(), PDA(), TM()}
}

// BuiltinKeys returns the file stems of the built-in diagrams in drawing
// order.
func BuiltinKeys() []string {
	bs := Builtins()
	keys := make([]string, len(bs))
	for i, d := range bs {
		keys[i] = d.File
	}
	return keys
}

// Lookup returns a fresh built-in diagram matching key by file stem or graph
// name, case-insensitively.
func Lookup(key string) (*Diagram, bool) {
	for _, d := range Builtins() {
		if strings.EqualFold(key, d.File) || strings.EqualFold(key, d.Name) {
			return d, true
		}
	}
	return nil, false
}
