// Package config loads the application settings shared by the gridpath
// CLI and HTTP server.
//
// Settings come from Default(), overlaid by an optional YAML file
// (unknown keys are rejected), and finally by command-line flags in the
// caller. Validate reports the first invalid field wrapped in ErrInvalid.
//
// Example file:
//
//	grid:
//	  path: maps/grid.txt
//	  start: {x: 0, y: 0}
//	  goal:  {x: 19, y: 19}
//	render:
//	  mode: fcost
//	  color: true
//	log:
//	  level: debug
//	  development: true
//	server:
//	  addr: ":8080"
package config
