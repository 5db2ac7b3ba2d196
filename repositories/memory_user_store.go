package repositories

import (
	"context"
	"sync"
	"time"

	"beatbazaar/models"
)

// InMemoryUserStore keeps users in a map. It backs the handler tests and is
// handy for local development without postgres. WithinTx holds the store
// lock for the whole transaction, so transactions are fully serialized.
type InMemoryUserStore struct {
	mu     sync.Mutex
	users  map[uint]models.User
	nextID uint
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[uint]models.User)}
}

func (s *InMemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByEmailLocked(email)
}

func (s *InMemoryUserStore) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.users {
		u := s.users[id]
		if u.ResetToken != nil && *u.ResetToken == token {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStore) CountAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

func (s *InMemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return ErrDuplicateKey
		}
		if existing.ResetToken != nil && user.ResetToken != nil && *existing.ResetToken == *user.ResetToken {
			return ErrDuplicateKey
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *cloneUser(*user)
	return nil
}

func (s *InMemoryUserStore) Save(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.ID]; !exists {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *cloneUser(*user)
	return nil
}

// WithinTx runs fn against a shadow copy of the store and adopts the shadow
// state only if fn succeeds, mirroring commit/rollback semantics.
func (s *InMemoryUserStore) WithinTx(ctx context.Context, fn func(tx UserStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shadow := &InMemoryUserStore{users: make(map[uint]models.User, len(s.users)), nextID: s.nextID}
	for id, u := range s.users {
		shadow.users[id] = *cloneUser(u)
	}

	if err := fn(shadow); err != nil {
		return err
	}

	s.users = shadow.users
	s.nextID = shadow.nextID
	return nil
}

func (s *InMemoryUserStore) findByEmailLocked(email string) (*models.User, error) {
	for id := range s.users {
		if s.users[id].Email == email {
			u := s.users[id]
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

// cloneUser copies a user including its pointer fields so callers can't
// mutate stored state behind the store's back.
func cloneUser(u models.User) *models.User {
	c := u
	if u.ResetToken != nil {
		t := *u.ResetToken
		c.ResetToken = &t
	}
	if u.ResetTokenExpiry != nil {
		e := *u.ResetTokenExpiry
		c.ResetTokenExpiry = &e
	}
	return &c
}

var _ UserStore = (*InMemoryUserStore)(nil)
var _ UserStore = (*GormUserStore)(nil)
