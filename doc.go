// Package dominosort orders "domino" items so that each item's tail lands as
// close as possible to the next item's head.
//
// What & Why:
//
//	An Item is a (Head, Tail) pair of vectors. The loss of an ordering is
//	Σ metric(items[i].Tail, items[i+1].Head). Finding the ordering of minimal
//	loss is an asymmetric shortest Hamiltonian path problem; Sort solves it
//	exactly for the small instances it is meant for.
//
// How:
//
//   - Each link i→j is a variable x[i*N+j] ∈ [0,1] of a linear relaxation
//     (package lp) whose constraints live in a Conditions value.
//   - A fractional relaxation is split on its first fractional link: the
//     link is fixed to 0 in one child and to 1 in the other.
//   - An integral relaxation that contains a cycle gets the shortest such
//     cycle banned with a cut. Cuts are shared by the whole search tree.
//   - An integral acyclic relaxation is a Hamiltonian path; it becomes the
//     incumbent when its loss beats the best known one.
//   - Relaxation objectives are lower bounds, so nodes that cannot beat the
//     incumbent are pruned (WithBounding).
//
// Subpackages:
//
//	matrix/ dense storage, row stacking, Floyd–Warshall
//	metric/ L1 / L2 / Lp / L∞ norms and user norms
//	lp/     two-phase simplex used as the relaxation routine
//
// The search is single-threaded and synchronous. Use WithContext to bound
// it in wall-clock time and WithMaxNodes to bound it in relaxations.
//
// Quick example:
//
//	items := []dominosort.Item{
//		{Head: metric.Scalar(0), Tail: metric.Scalar(5)},
//		{Head: metric.Scalar(9), Tail: metric.Scalar(20)},
//		{Head: metric.Scalar(5), Tail: metric.Scalar(9)},
//	}
//	sorted, err := dominosort.Sort(items, metric.Manhattan{})
package dominosort
