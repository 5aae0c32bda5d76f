// Package cartera implements a portfolio valuation engine over a
// chronological ledger of buy/sell records.
//
// The core functionalities include:
//   - Ledger Management: recording buy/sell records in a chronological,
//     input-stable order, with free-text operation tokens normalized into
//     typed sides.
//   - Cost-Basis Accounting: a pure weighted-average costing reducer that
//     folds the record stream into per-symbol positions, realized P&L and
//     ingestion diagnostics in a single pass.
//   - Valuation: pricing the open positions at the latest known native
//     quotes and FX rates, converted into one explicit accounting currency.
//   - Money-Weighted Return: an XIRR solver over the dated cash-flow
//     history, with a synthetic terminal liquidation flow.
//   - Data Persistence: encoding and decoding the ledger to and from a
//     human-readable JSONL format, and importing broker CSV exports.
//
// All ledger arithmetic is exact: quantities and monetary amounts are
// decimal values, never floats. Only the return solver and the percentage
// figures work in float64.
//
// This package serves as the foundational logic for the `cta` command-line
// tool.
package cartera
