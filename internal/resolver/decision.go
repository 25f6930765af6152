package resolver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dbsmedya/doppel/internal/types"
)

// Action is the operator's choice for one duplicate group.
type Action int

const (
	// ActionDelete removes the selected members after confirmation.
	ActionDelete Action = iota
	// ActionKeepAll resolves the group with zero deletions.
	ActionKeepAll
	// ActionAuto keeps the newest member and deletes the rest.
	ActionAuto
	// ActionQuit aborts all remaining groups.
	ActionQuit
)

// Decision is a parsed, validated operator token.
type Decision struct {
	Action  Action
	Indices []int // 1-based member indices, set for ActionDelete
}

// ParseDecision interprets a raw operator token for a group with
// memberCount members. Unrecognized or invalid input yields a
// *types.InputError; the caller re-prompts and never aborts on it.
func ParseDecision(input string, memberCount int) (Decision, error) {
	token := strings.ToLower(strings.TrimSpace(input))

	switch token {
	case "q", "quit":
		return Decision{Action: ActionQuit}, nil
	case "k", "keep", "keep all":
		return Decision{Action: ActionKeepAll}, nil
	case "a", "auto":
		return Decision{Action: ActionAuto}, nil
	}

	indices, err := ParseIndices(token, memberCount)
	if err != nil {
		return Decision{}, err
	}
	if len(indices) == memberCount {
		return Decision{}, &types.InputError{
			Message: "refusing to delete every copy: at least one file must survive",
		}
	}
	return Decision{Action: ActionDelete, Indices: indices}, nil
}

// ParseIndices parses a comma-separated list of 1-based indices,
// deduplicated and sorted. An empty list, a non-numeric entry, or an
// out-of-range index is a *types.InputError.
func ParseIndices(input string, maxIndex int) ([]int, error) {
	seen := map[int]struct{}{}

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		index, err := strconv.Atoi(part)
		if err != nil {
			return nil, &types.InputError{Message: fmt.Sprintf("%q is not a valid number", part)}
		}
		if index < 1 || index > maxIndex {
			return nil, &types.InputError{
				Message: fmt.Sprintf("index %d out of range (1-%d)", index, maxIndex),
			}
		}
		seen[index] = struct{}{}
	}

	if len(seen) == 0 {
		return nil, &types.InputError{Message: "no valid indices provided"}
	}

	indices := make([]int, 0, len(seen))
	for index := range seen {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices, nil
}

// Affirmative reports whether a confirmation response counts as an
// explicit yes. Anything else, including an empty line, declines.
func Affirmative(response string) bool {
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
