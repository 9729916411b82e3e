package store

import (
	"context"
	"sort"
	"sync"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/user/internal/models"
)

type MemoryStore struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[int64]*models.User
	nextID  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[int64]*models.User),
		nextID:  1,
	}
}

func (s *MemoryStore) Create(_ context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return nil, errs.Conflictf("Email already registered")
	}

	user.ID = s.nextID
	s.nextID++

	stored := user
	s.byEmail[stored.Email] = &stored
	s.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (s *MemoryStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, errs.NotFoundf("user %q", email)
	}
	out := *u
	return &out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, errs.NotFoundf("User not found")
	}
	out := *u
	return &out, nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
