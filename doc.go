// Package inventory provides a small stock ledger: a mapping from item name
// to quantity, with validated additive and subtractive mutation, low-stock
// queries, and persistence of the whole map as a single JSON document.
//
// The core functionalities include:
//   - Stock Mutation: Adding and removing item quantities with name
//     validation; entries whose quantity drops to zero or below are removed
//     from the ledger immediately.
//   - Queries: Per-item quantity lookup and listing of items strictly below a
//     stock threshold, both in the ledger's insertion order.
//   - Data Persistence: Encoding and decoding the stock map to and from a
//     human-readable, order-preserving JSON object.
//
// No operation panics or propagates failures beyond its boundary: every
// failure is logged through the injected logging collaborator and reported as
// a StockError status value, leaving the ledger in a safe state. Callers that
// only care about the logs may ignore the returned errors entirely.
//
// This package serves as the foundational logic for the `inv` command-line
// tool.
package inventory
