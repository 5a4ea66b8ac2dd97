// Package savings provides the functions and types for tracking personal
// savings goals. It is designed to be local-first and auditable: all state
// lives on the user's machine in human-readable files, and every figure shown
// is recomputed from the contribution history rather than stored.
//
// The core functionalities include:
//   - Goal Ledger: recording goals and their contributions in an append-only,
//     replayable command log. A goal's saved amount is always the sum of its
//     contributions.
//   - Exchange Rate Cache: the latest USD to INR conversion factor with its
//     fetch time, a one hour freshness window, and a fixed fallback so
//     reporting works without network access.
//   - Aggregation: portfolio totals and overall progress normalized into the
//     base currency (INR) regardless of each goal's own currency.
//   - Insights: derived analytics over the contribution history (averages,
//     streaks, projected completion, suggested monthly amount), recomputed on
//     demand with no stored state.
//   - Achievements: a read-only predicate set evaluated against the goals,
//     with an unlocked set persisted across sessions.
//   - Persistence: encoding and decoding of all state to and from
//     human-readable, version-controllable files (JSONL command log plus
//     small JSON snapshots).
//
// This package serves as the foundational logic for the `syfe` command-line
// tool.
package savings
