package resolver

import "github.com/dbsmedya/doppel/internal/types"

// PlanFromIndices builds a deletion plan from validated 1-based member
// indices.
func PlanFromIndices(group types.DuplicateGroup, indices []int) types.DeletionPlan {
	plan := types.DeletionPlan{}
	for _, index := range indices {
		plan.Targets = append(plan.Targets, group.Members[index-1])
	}
	return plan
}

// AutoPlan keeps the member with the greatest modification time
// (ties resolve to the earliest-seen member) and targets every other
// member for deletion.
func AutoPlan(group types.DuplicateGroup) (keep types.FileRecord, plan types.DeletionPlan) {
	newest := group.NewestIndex()
	for i, member := range group.Members {
		if i == newest {
			continue
		}
		plan.Targets = append(plan.Targets, member)
	}
	return group.Members[newest], plan
}
