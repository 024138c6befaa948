// Package channel describes the mood channels entries are posted to.
package channel

// Channel is one mood channel. The set is slow-changing; in practice it is
// seeded from fixtures and only member counts move.
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	MemberCount int    `json:"memberCount"`
	Active      bool   `json:"isActive"`
}

// ByID returns the channel with the given id, or false when the id dangles.
// A dangling reference is not an error, it just selects nothing.
func ByID(channels []Channel, id string) (Channel, bool) {
	for _, c := range channels {
		if c.ID == id {
			return c, true
		}
	}
	return Channel{}, false
}
