package process

// Notes:
// - Only PIDs that cannot exist are used; killing a real process tree is
//   covered by the snapshot integration path, not unit tests

import "testing"

func TestKillTree_IgnoresInvalidPIDs(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{-1, 0, 999999999} {
		KillTree(pid)
	}
}
