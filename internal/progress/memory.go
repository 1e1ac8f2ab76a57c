package progress

import "errors"

// MemoryStore is an in-memory RecordStore for tests and ephemeral runs.
type MemoryStore struct {
	rec *Record

	// FailSave makes every Save drop the write and return an error.
	FailSave bool

	// Saves counts successful Save calls.
	Saves int
}

var _ RecordStore = (*MemoryStore)(nil)

// ErrSaveFailed is returned by MemoryStore.Save when FailSave is set.
var ErrSaveFailed = errors.New("save failed")

// Load returns a copy of the stored record, or a fresh default.
func (m *MemoryStore) Load() *Record {
	if m.rec == nil {
		return NewRecord()
	}
	return m.rec.Clone()
}

// Save replaces the stored record.
func (m *MemoryStore) Save(rec *Record) error {
	if m.FailSave {
		return ErrSaveFailed
	}
	m.rec = rec.Clone()
	m.Saves++
	return nil
}

// Reset drops the stored record.
func (m *MemoryStore) Reset() error {
	m.rec = nil
	return nil
}
