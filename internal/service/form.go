package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/form"
	"github.com/passform/passform-go/internal/model"
)

var ErrFormNotFound = errors.New("form not found")

type formSession struct {
	state     form.State
	updatedAt time.Time
}

// FormService keeps form sessions in memory. Sessions idle for longer than
// the TTL are treated as gone and removed by Sweep.
type FormService struct {
	mu    sync.Mutex
	forms map[string]*formSession
	gen   *crypto.Generator
	ttl   time.Duration
	now   func() time.Time
}

// NewFormService creates a FormService drawing passwords from gen.
func NewFormService(gen *crypto.Generator, ttl time.Duration) *FormService {
	return &FormService{
		forms: make(map[string]*formSession),
		gen:   gen,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Create starts a session with the default form.
func (s *FormService) Create() model.FormResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	sess := &formSession{state: form.New(), updatedAt: s.now().UTC()}
	s.forms[id] = sess
	return formToResponse(id, sess)
}

// Get returns the current state of a session.
func (s *FormService) Get(id string) (model.FormResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return model.FormResponse{}, err
	}
	return formToResponse(id, sess), nil
}

// Update applies the non-nil fields of req.
func (s *FormService) Update(id string, req model.UpdateFormRequest) (model.FormResponse, error) {
	return s.apply(id, func(st form.State) (form.State, error) {
		if req.PasswordLength != nil {
			st = st.SetLength(*req.PasswordLength)
		}
		for class, v := range map[form.Class]*bool{
			form.ClassLowercase: req.Lowercase,
			form.ClassUppercase: req.Uppercase,
			form.ClassDigits:    req.Digits,
			form.ClassSymbols:   req.Symbols,
		} {
			if v != nil {
				st = st.Set(class, *v)
			}
		}
		return st, nil
	})
}

// Toggle flips the named character class.
func (s *FormService) Toggle(id, class string) (model.FormResponse, error) {
	c, err := form.ParseClass(class)
	if err != nil {
		return model.FormResponse{}, err
	}
	return s.apply(id, func(st form.State) (form.State, error) {
		return st.Toggle(c), nil
	})
}

// Submit validates the length field and stores a freshly generated password.
func (s *FormService) Submit(id string) (model.FormResponse, error) {
	return s.apply(id, func(st form.State) (form.State, error) {
		return st.Submit(s.gen)
	})
}

// Reset restores the session to the default form.
func (s *FormService) Reset(id string) (model.FormResponse, error) {
	return s.apply(id, func(st form.State) (form.State, error) {
		return st.Reset(), nil
	})
}

// Delete discards a session.
func (s *FormService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.forms, id)
	return nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *FormService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for id, sess := range s.forms {
		if s.expired(sess) {
			delete(s.forms, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *FormService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Debug("expired form sessions removed", "count", n)
			}
		}
	}
}

// apply runs fn against the session's state and commits the result only on
// success. The session's idle timer restarts either way.
func (s *FormService) apply(id string, fn func(form.State) (form.State, error)) (model.FormResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return model.FormResponse{}, err
	}

	sess.updatedAt = s.now().UTC()
	next, err := fn(sess.state)
	if err != nil {
		return model.FormResponse{}, err
	}
	sess.state = next
	return formToResponse(id, sess), nil
}

// lookup must be called with s.mu held.
func (s *FormService) lookup(id string) (*formSession, error) {
	sess, ok := s.forms[id]
	if !ok || s.expired(sess) {
		return nil, ErrFormNotFound
	}
	return sess, nil
}

func (s *FormService) expired(sess *formSession) bool {
	return s.ttl > 0 && s.now().Sub(sess.updatedAt) > s.ttl
}

func formToResponse(id string, sess *formSession) model.FormResponse {
	st := sess.state
	return model.FormResponse{
		ID:             id,
		PasswordLength: st.LengthField,
		Lowercase:      st.Lowercase,
		Uppercase:      st.Uppercase,
		Digits:         st.Digits,
		Symbols:        st.Symbols,
		Password:       st.Password,
		Generated:      st.Generated,
		UpdatedAt:      sess.updatedAt,
	}
}
