// Package config builds the startup configuration from positional arguments or
// a TOML file.
//
// A TOML file looks like:
//
//	positive = true
//	width = 800
//	height = 600
//	title = "Sales_Report"
//	lines = ["{Revenue,2x+3,blue}"]
//
//	[[line]]
//	name = "Cost"
//	equation = "x+10"
//	color = "red"
package config
