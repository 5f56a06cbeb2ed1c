// Package models defines the core domain models for the club ledger.
//
// # Ledgers
//
// Three independent ledgers hold the club's money:
//   - TeamFundTransaction: the sponsorship fund (shared treasury)
//   - PersonalTransaction: each player's prepaid personal account
//   - MemberFundTransaction: the member-dues pool
//
// Two records settle money across ledgers and own the rows they generate:
//   - DiningRecord: a group meal split among participants with a per-person cap
//   - Match: a friendly match whose fees are reconciled against its cost
//
// # Balances
//
// Player.PersonalBalance is stored, and always equals the sum of the player's
// PersonalTransaction amounts. Fund balances are never stored; they are the
// sum of INCOME minus the sum of EXPENSE over their rows.
//
// # Design Principles
//
// 1. **Exact money**: every amount is a decimal.Decimal at cent precision
// 2. **Explicit ownership**: derived rows carry an Origin, never a tag in free text
// 3. **Avoid circular references**: relationships are ID strings, not pointers
package models
