package pidstore

import (
	"encoding/hex"
	"slices"
	"strings"
)

// PidStore indexes a set of PIDs by value and by name.
type PidStore struct {
	byValue map[uint16]*PidDescriptor
	byName  map[string]*PidDescriptor
	sorted  []*PidDescriptor
}

// NewPidStore creates a store. Later entries replace earlier ones with the
// same value or name; the loader rejects such duplicates before this point.
func NewPidStore(pids []*PidDescriptor) *PidStore {
	s := &PidStore{
		byValue: make(map[uint16]*PidDescriptor, len(pids)),
		byName:  make(map[string]*PidDescriptor, len(pids)),
	}
	for _, p := range pids {
		s.byValue[p.Value()] = p
		s.byName[strings.ToUpper(p.Name())] = p
	}
	s.sorted = make([]*PidDescriptor, 0, len(s.byValue))
	for _, p := range s.byValue {
		s.sorted = append(s.sorted, p)
	}
	slices.SortFunc(s.sorted, func(a, b *PidDescriptor) int {
		return int(a.Value()) - int(b.Value())
	})
	return s
}

// LookupPID returns the PID with the given value, or nil.
func (s *PidStore) LookupPID(value uint16) *PidDescriptor {
	return s.byValue[value]
}

// LookupPIDByName returns the PID with the given name, ignoring case, or nil.
func (s *PidStore) LookupPIDByName(name string) *PidDescriptor {
	return s.byName[strings.ToUpper(name)]
}

// AllPIDs returns every PID sorted by value.
func (s *PidStore) AllPIDs() []*PidDescriptor {
	return slices.Clone(s.sorted)
}

// PIDCount returns the number of PIDs.
func (s *PidStore) PIDCount() int { return len(s.sorted) }

// RootPidStore holds the ESTA store and the manufacturer stores.
type RootPidStore struct {
	esta          *PidStore
	manufacturers map[uint16]*PidStore
	version       uint64
	digest        [32]byte
}

// NewRootPidStore creates a root store. A nil esta store is replaced with an
// empty one.
func NewRootPidStore(esta *PidStore, manufacturers map[uint16]*PidStore, version uint64) *RootPidStore {
	if esta == nil {
		esta = NewPidStore(nil)
	}
	m := make(map[uint16]*PidStore, len(manufacturers))
	for id, s := range manufacturers {
		m[id] = s
	}
	return &RootPidStore{esta: esta, manufacturers: m, version: version}
}

// ESTAStore returns the store of ESTA defined PIDs.
func (r *RootPidStore) ESTAStore() *PidStore { return r.esta }

// ManufacturerStore returns the store for a manufacturer, or nil.
func (r *RootPidStore) ManufacturerStore(manufacturerID uint16) *PidStore {
	return r.manufacturers[manufacturerID]
}

// ManufacturerIDs returns the manufacturers with a store, sorted.
func (r *RootPidStore) ManufacturerIDs() []uint16 {
	ids := make([]uint16, 0, len(r.manufacturers))
	for id := range r.manufacturers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Version returns the store version, the highest of all loaded sources.
func (r *RootPidStore) Version() uint64 { return r.version }

// Digest returns the BLAKE3 hash of the loaded sources as hex. It is empty
// for stores not built by the loader.
func (r *RootPidStore) Digest() string {
	if r.digest == [32]byte{} {
		return ""
	}
	return hex.EncodeToString(r.digest[:])
}

// GetDescriptor looks up a PID by name, first in the ESTA store and then in
// the store for manufacturerID.
func (r *RootPidStore) GetDescriptor(name string, manufacturerID uint16) *PidDescriptor {
	if p := r.esta.LookupPIDByName(name); p != nil {
		return p
	}
	if s := r.manufacturers[manufacturerID]; s != nil {
		return s.LookupPIDByName(name)
	}
	return nil
}

// GetDescriptorByValue looks up a PID by value, first in the ESTA store and
// then in the store for manufacturerID.
func (r *RootPidStore) GetDescriptorByValue(value uint16, manufacturerID uint16) *PidDescriptor {
	if p := r.esta.LookupPID(value); p != nil {
		return p
	}
	if s := r.manufacturers[manufacturerID]; s != nil {
		return s.LookupPID(value)
	}
	return nil
}
