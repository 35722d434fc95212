// Package metrics derives cyclomatic complexity and line statistics
// from raw syntax trees.
//
// The complexity counting rule is uniform across languages: a function
// starts at 1 and gains one point for each conditional branch (if and
// else-if/elif), each case arm, each loop header, each exception
// handling clause, each comprehension construct, each short-circuit
// operator occurrence and each ternary expression in its own subtree.
// Default/else arms do not count. Nested functions and lambdas are
// excluded; each gets its own independent count starting at 1.
package metrics

import "github.com/abrick/brick/internal/lang"

// Complexity computes the cyclomatic complexity of one function-like raw
// node. The per-language table decides which kinds are decision points
// and where nested function boundaries are.
func Complexity(fn lang.RawNode, tbl *lang.Table) int {
	complexity := 1
	for _, child := range fn.Children() {
		countBranches(child, tbl, &complexity)
	}
	return complexity
}

func countBranches(n lang.RawNode, tbl *lang.Table, complexity *int) {
	kind := n.Kind()
	if tbl.FunctionKinds[kind] {
		// Nested function: its decision points belong to its own count.
		return
	}
	if tbl.BranchKinds[kind] || tbl.BoolOpKinds[kind] {
		*complexity++
	}
	for _, child := range n.Children() {
		countBranches(child, tbl, complexity)
	}
}
