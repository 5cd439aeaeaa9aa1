// Package planner finds the best way to split a weighted tree into a small
// forest by removing at most two edges.
//
// What:
//
//   - Plan(t, root, cmp, opts...) walks the component rooted at root in
//     pre-order. Every non-root node v is a trial cut: the edge above v is
//     severed with a tree.Cutter under an open checkpoint mark, and the
//     candidate forests are ranked by cmp (forest.Min, first minimal wins):
//
//     1. the incumbent (initially the single component {root});
//     2. the two-way split {root, v};
//     3. if another cut is allowed and root's side weighs at least as much as
//     v's, a nested search on root's side (v excluded) with v fixed;
//     4. if another cut is allowed and v's side weighs at least as much as
//     root's, a nested search on v's side with root's side fixed.
//
//     Fixed components travel into the nested search and are part of every
//     forest it ranks, so cmp always compares whole partitions of the
//     original component. The mark is rolled back before the walk moves on,
//     so every trial sees the tree as if only its own cuts were made.
//
// Options:
//
//   - WithMaxCuts(n)      cut budget, 1 or 2 (default 2).
//   - WithCutter(c)       replaces tree.SubtractingCutter.
//   - WithExclusions(...) nodes the top-level walk skips, subtree included.
//   - WithLogger(l)       debug records per evaluated cut.
//   - WithStats(&s)       search counters.
//
// Metrics:
//
//	Each Plan call records planner_plans_total, planner_cuts_total,
//	planner_rollbacks_total, planner_candidates_total and
//	planner_plan_duration_seconds on the global OpenTelemetry MeterProvider.
//	SetMetricsEnabled(false) turns recording off.
//
// Complexity:
//
//   - Time:   O(n^2 · depth) for MaxCuts = 2, O(n · depth) for MaxCuts = 1.
//   - Memory: O(n) for the walk stacks and the checkpoint journal.
//
// Comparing weights with ≥ in steps 3 and 4 keeps the search exhaustive
// over every pair of cut edges when weights are non-negative.
package planner
