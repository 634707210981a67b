package planner

import "errors"

var (
	// ErrConfig indicates malformed or inconsistent planning input. It is
	// detected before model assembly and never silently corrected.
	ErrConfig = errors.New("planner: invalid configuration")
	// ErrInfeasible indicates the constraint set admits no solution, i.e. the
	// target SoC cannot be reached within the horizon at the allowed power.
	ErrInfeasible = errors.New("planner: problem is infeasible")
	// ErrUnbounded indicates the LP is unbounded. It should not arise with a
	// correctly bounded formulation and is surfaced as a defect signal.
	ErrUnbounded = errors.New("planner: problem is unbounded")
	// ErrSolver indicates the underlying solver failed to reach a conclusive
	// status. Solves are not retried.
	ErrSolver = errors.New("planner: solver failure")
	// ErrExtraction indicates a post-solve consistency check failed.
	ErrExtraction = errors.New("planner: solution failed post-solve checks")
)
