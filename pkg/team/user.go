// Package team holds the user roster records.
package team

import "fmt"

// Status is a user's presence state.
type Status string

const (
	Online  Status = "online"
	Away    Status = "away"
	Busy    Status = "busy"
	Offline Status = "offline"
)

// ParseStatus validates a presence label.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Online, Away, Busy, Offline:
		return Status(s), nil
	}
	return "", fmt.Errorf("team: unknown status %q", s)
}

// Valid reports whether s is a recognised presence state.
func (s Status) Valid() bool {
	switch s {
	case Online, Away, Busy, Offline:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// User is an identity record. Users are mutated in place (status changes)
// and never deleted.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar,omitempty"`
	Status     Status `json:"status"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
	JoinDate   string `json:"joinDate"`
}
