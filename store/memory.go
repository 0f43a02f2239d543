package store

import (
	"sync"
	"time"

	"vibe-eats/models"
)

// MemoryStore keeps the user list in an ordered slice, the way the demo's
// fake database worked. Nothing survives a restart; every process starts from
// the two seed records.
//
// The mutex keeps concurrent handlers memory-safe. It does not add
// read-modify-write isolation across requests: two racing updates to the same
// record still resolve as last write wins.
type MemoryStore struct {
	mu     sync.Mutex
	users  []models.User
	lastID int64
}

// NewMemoryStore builds a store holding the seed records.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: []models.User{
			{ID: 1, Name: "Snehanshu", Email: "admin@vibe.com", Password: "admin", Role: models.RoleAdmin},
			{ID: 2, Name: "Biryani Lover", Email: "lover@food.com", Password: "123", Role: models.RoleCustomer},
		},
		lastID: 2,
	}
}

// nextID derives ids from the wall clock in milliseconds, the same scheme the
// demo used, bumped past the last issued id so ids stay unique and are never
// reused even within a single millisecond.
func (s *MemoryStore) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *MemoryStore) Create(name, email, password string, role models.Role) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}

	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		ID:       s.nextID(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	s.users = append(s.users, user)
	return &user, nil
}

func (s *MemoryStore) FindByCredentials(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			match := u
			return &match, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) List() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *MemoryStore) Update(id int64, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.users[i].Name = *patch.Name
		}
		if patch.Email != nil {
			s.users[i].Email = *patch.Email
		}
		if patch.Password != nil {
			s.users[i].Password = *patch.Password
		}
		if patch.Role != nil {
			s.users[i].Role = *patch.Role
		}
		updated := s.users[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Delete filters the record out. A missing id is not an error — the demo
// always reported success on delete.
func (s *MemoryStore) Delete(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	return id
}
