package tarjan

import (
	"slices"

	"github.com/katalvlaran/duograph/core"
)

// Components expands a label vector into explicit node groups. Groups
// are ordered by representative index and members ascend within each
// group; every labeled node appears in exactly one group.
func Components(labels []core.NodeIndex) [][]core.NodeIndex {
	groups := make(map[core.NodeIndex][]core.NodeIndex, len(labels))
	reps := make([]core.NodeIndex, 0, len(labels))
	for i, l := range labels {
		if _, ok := groups[l]; !ok {
			reps = append(reps, l)
		}
		groups[l] = append(groups[l], core.NodeIndex(i))
	}

	slices.Sort(reps)
	out := make([][]core.NodeIndex, 0, len(reps))
	for _, r := range reps {
		out = append(out, groups[r])
	}
	return out
}
