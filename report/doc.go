// Package report renders search results.
//
//   - Text / TextLevel: the line-oriented format of the experiment logs
//     ("Instance:", "k:", "Safe Dominating Sets of size k:", "Running time:").
//     Vertices are 1-indexed.
//   - WriteYAML / WriteJSON: a Document mirroring eternal.Result.
//   - CSV: one summary row per instance (Instance, Guard Set, Time (ms)).
package report
