package diagram

import "fmt"

// Issue is a lint finding. Findings are advisory; rendering never checks
// them.
type Issue struct {
	Kind    IssueKind
	Message string
}

// IssueKind classifies a lint finding.
type IssueKind string

const (
	IssueEmptyID        IssueKind = "empty-id"
	IssueDuplicateNode  IssueKind = "duplicate-node"
	IssueUndeclaredNode IssueKind = "undeclared-node"
	IssueEmptyLabel     IssueKind = "empty-edge-label"
	IssueDuplicateEdge  IssueKind = "duplicate-edge"
)

func (i Issue) String() string { return fmt.Sprintf("%s: %s", i.Kind, i.Message) }

// Lint reports structural oddities in d: empty or duplicate node IDs, edges
// touching undeclared nodes, unlabeled edges and repeated edges. Self-loops
// are normal in automaton diagrams and are not reported.
//
// Graphviz creates undeclared nodes implicitly, so every finding here still
// renders.
func Lint(d *Diagram) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(d.nodes))

	for _, n := range d.nodes {
		if n.ID == "" {
			issues = append(issues, Issue{IssueEmptyID, "node with empty ID"})
			continue
		}
		if seen[n.ID] {
			issues = append(issues, Issue{IssueDuplicateNode, fmt.Sprintf("node %q declared more than once", n.ID)})
		}
		seen[n.ID] = true
	}

	edges := make(map[Edge]bool, len(d.edges))
	for _, e := range d.edges {
		ends := []string{e.From}
		if !e.IsSelfLoop() {
			ends = append(ends, e.To)
		}
		for _, end := range ends {
			if !seen[end] {
				issues = append(issues, Issue{IssueUndeclaredNode, fmt.Sprintf("edge %s -> %s references undeclared node %q", e.From, e.To, end)})
			}
		}
		if e.Label == "" {
			issues = append(issues, Issue{IssueEmptyLabel, fmt.Sprintf("edge %s -> %s has no label", e.From, e.To)})
		}
		if edges[e] {
			issues = append(issues, Issue{IssueDuplicateEdge, fmt.Sprintf("edge %s -> %s %q declared more than once", e.From, e.To, e.Label)})
		}
		edges[e] = true
	}
	return issues
}
