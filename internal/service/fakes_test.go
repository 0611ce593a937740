package service

import (
	"context"
	"sync"
	"time"

	"github.com/passform/passform-go/internal/model"
	"github.com/passform/passform-go/internal/repository"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*model.User)}
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now().UTC()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

type presetKey struct {
	userID   int64
	presetID string
}

type memPresetStore struct {
	mu      sync.Mutex
	presets map[presetKey]*model.Preset
}

func newMemPresetStore() *memPresetStore {
	return &memPresetStore{presets: make(map[presetKey]*model.Preset)}
}

func (m *memPresetStore) Create(_ context.Context, p *model.Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := presetKey{p.UserID, p.PresetID}
	version := 1
	if existing, ok := m.presets[k]; ok {
		if !existing.Deleted {
			return repository.ErrDuplicatePreset
		}
		version = existing.Version + 1
	}
	cp := *p
	cp.Version = version
	cp.UpdatedAt = time.Now().UTC()
	m.presets[k] = &cp
	return nil
}

func (m *memPresetStore) Update(_ context.Context, p *model.Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := presetKey{p.UserID, p.PresetID}
	existing, ok := m.presets[k]
	if !ok || existing.Deleted {
		return repository.ErrPresetNotFound
	}
	cp := *p
	cp.Version = existing.Version + 1
	cp.UpdatedAt = time.Now().UTC()
	m.presets[k] = &cp
	return nil
}

func (m *memPresetStore) Get(_ context.Context, userID int64, presetID string) (*model.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.presets[presetKey{userID, presetID}]
	if !ok || p.Deleted {
		return nil, repository.ErrPresetNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPresetStore) ListByUser(_ context.Context, userID int64) ([]model.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Preset
	for k, p := range m.presets {
		if k.userID == userID && !p.Deleted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memPresetStore) SoftDelete(_ context.Context, userID int64, presetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.presets[presetKey{userID, presetID}]
	if !ok || p.Deleted {
		return repository.ErrPresetNotFound
	}
	p.Deleted = true
	p.Version++
	return nil
}
