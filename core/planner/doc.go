// Package planner computes a cost-minimizing EV charging schedule over a
// fixed horizon. It formulates a time-indexed linear program coupling charging
// power, grid import/export and battery state of charge, solves it with
// gonum's simplex implementation and extracts a validated schedule.
package planner
