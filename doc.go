// Package cppi simulates a Constant Proportion Portfolio Insurance
// strategy over a historical series of daily closing prices.
//
// CPPI keeps a "floor", the minimum portfolio value the investor is
// willing to accept, and every day allocates a multiple of the cushion
// (the portfolio value above the floor) to a risky asset tracking the
// price series. The remainder earns daily interest on a safe account.
// When the portfolio value falls to the floor, the position is exited.
//
// The core functionalities include:
//   - Simulation Engine: a deterministic, single-pass fold over the
//     price series, using exact decimal arithmetic with cent-level
//     floor truncation after every allocation step.
//   - Price Series: loading daily closes from Yahoo Finance CSV files
//     or fetching them from the Yahoo chart endpoint.
//   - Data Persistence: encoding simulation runs to human-readable,
//     version-controllable JSONL, and equity curves to CSV.
//
// This package serves as the foundational logic for the `cps`
// command-line tool.
package cppi
