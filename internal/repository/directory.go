package repository

import (
	"sync"

	"farmdirect/marketplace/internal/model"
)

// Directory is the read-only list of known users consulted during sign-in.
// It is seeded once at startup and never written afterwards.
type Directory struct {
	mu    sync.RWMutex
	users []model.User
}

func NewDirectory(users []model.User) *Directory {
	d := &Directory{users: make([]model.User, len(users))}
	copy(d.users, users)
	return d
}

// FindByEmailAndRole returns the first user whose email and role both match.
// The sign-in flow never inspects the password, so neither does the lookup.
func (d *Directory) FindByEmailAndRole(email string, role model.Role) (model.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Email == email && u.Role == role {
			return u, true
		}
	}
	return model.User{}, false
}
