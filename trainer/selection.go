package trainer

import "sort"

// historyDepthFactor bounds how far back the fairness count looks: five times
// the number of notes in play is far enough to balance repetitions without
// letting ancient history dominate.
const historyDepthFactor = 5

// leastPracticedPool is how many of the least-practiced notes remain candidates
// after ranking, keeping some randomness in an otherwise deterministic policy.
const leastPracticedPool = 3

// countRecent counts how many of the most recent attempts targeted each note in
// play, looking back at most historyDepthFactor * len(inPlay) attempts.
func countRecent(history []*Attempt, inPlay []Note) map[Note]int {
	counts := make(map[Note]int, len(inPlay))
	for _, n := range inPlay {
		counts[n] = 0
	}
	depth := historyDepthFactor * len(inPlay)
	if depth > len(history) {
		depth = len(history)
	}
	for i := 0; i < depth; i++ {
		a := history[len(history)-1-i]
		if _, ok := counts[a.Target()]; ok {
			counts[a.Target()]++
		}
	}
	return counts
}

// selectionCandidates returns the set of notes the next target may be drawn
// from, as a pure function of the notes in play, the attempt history and the
// previous target. The caller draws uniformly from the result.
//
//   - no prior attempts: every note in play is a candidate
//   - 1-3 prior attempts: every note in play except the previous target
//   - 4+ prior attempts: the least-practiced notes over the recent history,
//     previous target excluded, trimmed to the leastPracticedPool quietest
func selectionCandidates(inPlay []Note, history []*Attempt, last *Note) []Note {
	if len(history) == 0 || last == nil {
		out := make([]Note, len(inPlay))
		copy(out, inPlay)
		return out
	}

	if len(history) < 4 {
		out := make([]Note, 0, len(inPlay))
		for _, n := range inPlay {
			if n != *last {
				out = append(out, n)
			}
		}
		return out
	}

	counts := countRecent(history, inPlay)
	ranked := make([]Note, len(inPlay))
	copy(ranked, inPlay)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] < counts[ranked[j]]
	})

	out := make([]Note, 0, leastPracticedPool)
	for _, n := range ranked {
		if n == *last {
			continue
		}
		out = append(out, n)
		if len(out) == leastPracticedPool {
			break
		}
	}
	return out
}
