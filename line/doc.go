// Package line parses "{name,equation,color}" arguments into linear equations.
//
// An equation is a signed linear expression in x such as "2x+3", "-x+5" or
// "4x". The constant term is optional. Colors are matched case-insensitively
// against a fixed palette; anything unknown draws in black.
package line
