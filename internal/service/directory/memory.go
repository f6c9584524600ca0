package directory

import (
	"context"
	"sync"
)

// MemoryStore implements Store with in-memory maps. It backs tests and
// local development when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	people  map[string]Person // keyed by CPF
	grants  []GrantRequest
	nextSeq int64
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		people:  make(map[string]Person),
		nextSeq: 1,
	}
}

// AddPerson registers a resident record under the given CPF.
func (s *MemoryStore) AddPerson(cpf, name string, classification int) Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	person := Person{
		Sequence:       s.nextSeq,
		Name:           name,
		Classification: classification,
	}
	s.nextSeq++
	s.people[cpf] = person
	return person
}

func (s *MemoryStore) FindPersonByCPF(_ context.Context, cpf string) (Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if person, ok := s.people[cpf]; ok {
		return person, nil
	}
	return Person{}, ErrPersonNotFound
}

func (s *MemoryStore) IsTagOrPlateDuplicate(_ context.Context, tagNumber, plate string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, grant := range s.grants {
		if grant.TagNumber == tagNumber || grant.Plate == plate {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) GrantVehicleAccess(ctx context.Context, req GrantRequest) error {
	if _, err := s.FindPersonByCPF(ctx, req.CPF); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants = append(s.grants, req)
	return nil
}

// Grants returns a snapshot of everything persisted so far.
func (s *MemoryStore) Grants() []GrantRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]GrantRequest(nil), s.grants...)
}
