// Package optimizer - Run-length compression of purchase chains
package optimizer

import "storage-cost/core/types"

// Compress merges consecutive purchases of the same plan into runs
func Compress(chain []types.Purchase) types.PlanAssignment {
	assignment := types.PlanAssignment{}
	for _, p := range chain {
		if n := len(assignment); n > 0 && assignment[n-1].Plan.SameAs(p.Plan) {
			assignment[n-1].Count++
			assignment[n-1].Months += p.Covered()
			continue
		}
		assignment = append(assignment, types.PlanRun{Plan: p.Plan, Count: 1, Months: p.Covered()})
	}
	return assignment
}
