package game

// Score implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches.
//   - Count the remaining (unconsumed) secret letters.
//
// Pass 2:
//   - For each unmarked guess letter: if an unconsumed occurrence remains,
//     mark Present and consume it; otherwise it stays Absent.
//
// A secret letter is never credited to more positions than it occurs.
// Both inputs must have the same rune length; Validate guarantees that.
func Score(secret, guess string) Feedback {
	s := []rune(secret)
	g := []rune(guess)
	res := make(Feedback, len(g))

	remaining := make(map[rune]int, len(s))

	// First pass: exact matches; everything else is Absent until proven otherwise.
	for i := range g {
		if i < len(s) && g[i] == s[i] {
			res[i] = MarkExact
			continue
		}
		res[i] = MarkAbsent
		if i < len(s) {
			remaining[s[i]]++
		}
	}

	// Second pass: present-elsewhere, consuming one occurrence at a time.
	for i := range g {
		if res[i] == MarkExact {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = MarkPresent
			remaining[g[i]]--
		}
	}
	return res
}
