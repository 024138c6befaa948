package state

import "tableflip.dev/moodsync/pkg/team"

// User slice transitions. Each unexported transition is pure: it derives the
// next slice value from the current one and the intent payload, with no I/O.
// The exported intents dispatch a transition and then write back.

func setCurrentUser(s UserSlice, u team.User) UserSlice {
	s.CurrentUser = &u
	s.Authenticated = true
	return s
}

func updateUserStatus(s UserSlice, userID string, status team.Status) UserSlice {
	users := append([]team.User(nil), s.Users...)
	for i := range users {
		if users[i].ID == userID {
			users[i].Status = status
		}
	}
	s.Users = users
	if s.CurrentUser != nil && s.CurrentUser.ID == userID {
		cur := *s.CurrentUser
		cur.Status = status
		s.CurrentUser = &cur
	}
	return s
}

func addUser(s UserSlice, u team.User) UserSlice {
	s.Users = append(append([]team.User(nil), s.Users...), u)
	return s
}

func setUsers(s UserSlice, users []team.User) UserSlice {
	s.Users = append([]team.User(nil), users...)
	return s
}

func logout(s UserSlice) UserSlice {
	s.CurrentUser = nil
	s.Authenticated = false
	return s
}

// SetCurrentUser signs u in as the local user.
func (c *Container) SetCurrentUser(u team.User) {
	c.user = setCurrentUser(c.user, u)
	c.persistCurrentUser()
}

// UpdateUserStatus changes a user's presence, in the roster and in the
// current-user record when they are the same person. Unknown ids are a
// no-op.
func (c *Container) UpdateUserStatus(userID string, status team.Status) {
	c.user = updateUserStatus(c.user, userID, status)
	c.persistUsers()
	c.persistCurrentUser()
}

// AddUser appends a user to the roster.
func (c *Container) AddUser(u team.User) {
	c.user = addUser(c.user, u)
	c.persistUsers()
	c.refreshStats()
}

// SetUsers replaces the roster wholesale.
func (c *Container) SetUsers(users []team.User) {
	c.user = setUsers(c.user, users)
	c.persistUsers()
	c.refreshStats()
}

// Logout clears the current user. The roster keeps the user's record.
func (c *Container) Logout() {
	c.user = logout(c.user)
	c.persistCurrentUser()
}

func (c *Container) persistUsers() {
	if c.store != nil {
		c.store.SaveUsers(c.user.Users)
	}
}

func (c *Container) persistCurrentUser() {
	if c.store != nil {
		c.store.SaveCurrentUser(c.user.CurrentUser)
	}
}
