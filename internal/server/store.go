package server

import (
	"sync"
	"time"

	"github.com/MUA122/IOT-Project/internal/models"
)

// SourceFunc adapts a dataset constructor to DatasetSource
type SourceFunc func(now time.Time) models.Dataset

// Snapshot implements DatasetSource
func (f SourceFunc) Snapshot(now time.Time) models.Dataset {
	return f(now)
}

// NewSource returns build itself, or when freeze is set a StaticStore
// holding the dataset build produces at now
func NewSource(build SourceFunc, freeze bool, now time.Time) DatasetSource {
	if freeze {
		return NewStaticStore(build(now))
	}
	return build
}

// StaticStore holds one fixed dataset and hands out deep copies of it
type StaticStore struct {
	data      models.Dataset
	snapshots int64
	mutex     sync.RWMutex
}

// NewStaticStore creates a store around a copy of data
func NewStaticStore(data models.Dataset) *StaticStore {
	return &StaticStore{data: *data.Copy()}
}

// Snapshot implements DatasetSource. now is ignored; the timestamps are the
// ones the dataset was stored with.
func (s *StaticStore) Snapshot(now time.Time) models.Dataset {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.snapshots++
	return *s.data.Copy()
}

// Replace swaps the stored dataset
func (s *StaticStore) Replace(data models.Dataset) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data = *data.Copy()
}

// Snapshots returns how many snapshots were served
func (s *StaticStore) Snapshots() int64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.snapshots
}
