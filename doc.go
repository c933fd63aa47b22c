// Package gridpath finds shortest paths on rectangular grids with A*.
//
// What is gridpath?
//
//	A small set of packages that load a text grid of open and blocked
//	cells, search it with A* (4-directional moves, Euclidean heuristic)
//	and report the path:
//		• grid   – Kind, Cell and the row-major Grid arena
//		• astar  – cost model, Frontier and the step-wise Searcher
//		• bfs    – breadth-first reachability and step distances
//		• gridio – text loader and renderer (kinds or fCost)
//		• config – YAML configuration for the command and the server
//		• server – HTTP search endpoint and WebSocket step stream
//
// Quick ASCII example (0 open, 5 obstacle; 3 path, 1 finalized off-path):
//
//	0 0 0        3 3 3
//	0 5 0   →    1 5 3
//	0 0 0        0 0 3
//
// The command lives in cmd/gridpath:
//
//	gridpath solve -grid maze.txt
//	gridpath serve -addr :8080
package gridpath
