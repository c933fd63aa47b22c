// Package gridio reads grids from the plain-text digit format and renders
// them back, either as kind digits or as fCost values.
//
// Input format:
//
//   - One line per row; each non-space character is one cell.
//   - Spaces are dropped, not counted as columns, so "0 5 0" and "050" are
//     the same row.
//   - '0' is Open and '5' is Obstacle. The annotation digits '1'
//     (Finalized) and '3' (OnPath) load as Open, so rendered output can be
//     fed back in.
//   - Any other character is ErrMalformedInput. Empty lines are skipped.
//
// Output modes:
//
//   - ModeKind:  the kind digit of every cell, space separated.
//   - ModeFCost: gCost+hCost with two decimals, right-aligned; cells never
//     evaluated print as InfToken.
//
// WithColor(true) colours obstacles red, path cells green and finalized
// cells cyan using ANSI escapes.
package gridio
