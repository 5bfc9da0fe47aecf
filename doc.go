// Package knapsack computes feasible ways to spend a fixed budget on a small
// set of exchange-traded funds.
//
// Given current unit prices, a target budget and a tolerance window, it
// enumerates every integer purchase combination, keeps the ones whose total
// cost falls within [budget-window, budget+window], and reports the effect
// of each candidate purchase on the portfolio's allocation weights versus
// the current holdings.
//
// The search is deliberately brute force: the combination space is the
// cartesian product of the per-instrument affordable-quantity ranges, which
// is exponential in the number of instruments. This is a personal tool for
// a handful of ETFs, not a solver.
//
// This package holds the domain model and the calculators; price lookup,
// configuration loading and presentation live in the yahoo, cmd and
// renderer packages.
package knapsack
