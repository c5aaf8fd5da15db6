// Package core defines the central data model shared by every stage of the
// equal-shares allocation pipeline: voters, projects, bids, and the exact
// monetary type (Money) that every arithmetic operation in this module is
// built on.
//
// Design goals:
//
//   - Exact arithmetic. Money wraps math/big.Rat so equal-split payments
//     (e.g. 1500/9) are represented precisely instead of rounded, keeping
//     two runs on identical input bit-identical.
//   - Dense, integer-keyed identifiers. VoterID and ProjectID are opaque
//     positive integers; BidGraph stores bids in adjacency-list form
//     (mirroring the shape of a textbook bipartite graph) instead of
//     interface{}-keyed maps, so later stages can build compact index
//     arrays cheaply.
//   - No hidden state. BidGraph carries no internal locking: a single
//     equal-shares run is synchronous and single-threaded end to end, so
//     the thread-safety a general-purpose graph type would need is dead
//     weight here. Concurrent callers run disjoint Compute calls, never a
//     shared BidGraph.
package core
