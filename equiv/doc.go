// Package equiv defines the Checker seam a logic-equivalence oracle
// plugs into and ships one default implementation, SimChecker, built on
// input-vector simulation rather than a SAT or BDD engine. SimChecker
// proves equivalence exhaustively for small designs and falls back to
// sampling — returning Unknown rather than a false Equal — once the
// input count makes exhaustive enumeration impractical.
package equiv
