package bank

// MemStore is an in-memory Store for tests and dry runs.
type MemStore struct {
	Records []Record
	LoadErr error
}

func (m *MemStore) Load() ([]Record, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]Record, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

func (m *MemStore) Append(records []Record) error {
	m.Records = append(m.Records, records...)
	return nil
}
