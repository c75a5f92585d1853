// Package alphatrade provides the data-access and portfolio-ledger core of a
// personal investment tracker. It is designed to run in one of two
// interchangeable data-sourcing modes: a self-contained simulated mode with
// no network dependency, and a live mode backed by external quote and
// AI-analysis providers.
//
// The core functionalities include:
//   - Ledger Store: persisted collections of assets and trade records with
//     upsert and append-only semantics, backed by a local key-value store.
//   - Market Providers: retrieval of current quotes and historical candle
//     bars from a live provider, with silent fallback to deterministic
//     simulated data whenever live retrieval cannot complete.
//   - Portfolio Calculator: pure aggregation over the asset collection
//     producing totals and per-asset unrealized gains.
//   - Mode Controller: an explicit, parameter-threaded toggle between
//     simulated and live behavior, holding the live-mode credentials.
//
// The AI analysis gateway lives in the insight subpackage; embedded
// educational topics live in docs. This package is the foundational logic
// for the `at` command-line tool and carries no presentation concerns.
package alphatrade
