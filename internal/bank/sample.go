package bank

import "math/rand/v2"

// Sample draws n distinct questions uniformly at random from the store.
// The returned indices are in draw order, not sorted; that order becomes
// the question numbering for the session. Consecutive calls are
// independent, so a question seen in one session may reappear in the next.
func Sample(s Store, n int) ([]Record, []int, error) {
	records, err := s.Load()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < n {
		return nil, nil, &InsufficientError{Need: n, Have: len(records)}
	}

	indices := rand.Perm(len(records))[:n]
	picked := make([]Record, n)
	for i, idx := range indices {
		picked[i] = records[idx]
	}
	return picked, indices, nil
}
