// Package selection turns operator input into a validated list of volume
// indices.
//
// Parse holds the one rule every input source follows: split on commas, trim,
// parse each piece as an integer, and require every index to exist in the
// discovered catalog. Prompter implementations only decide where the line of
// input comes from, so interactive and scripted runs validate identically.
package selection
