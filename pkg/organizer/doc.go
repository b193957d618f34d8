// Package organizer classifies a sequence of values (typically utility
// class names) into an ordered set of named groups according to pattern
// rules, then optionally sorts each group's contents.
//
// The engine has three cooperating parts:
//
//   - the resolver expands the requested group list (literal patterns,
//     preset keys, or the DefaultMarker) into a flat ordered rule list,
//     guaranteeing exactly one catch-all rule exists
//   - the classifier assigns every value to the first rule whose pattern
//     matches, or to the catch-all when none do
//   - the sorter optionally reorders each group, either lexicographically
//     or with a fixed-priority heuristic tuned for CSS utility classes
//
// Every invocation is a pure function of its inputs: no state is shared
// across calls, so Organize and OrganizeBy are safe to call concurrently
// from independent call sites.
package organizer
