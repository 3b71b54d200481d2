package buildflags

// Role is the role of a user.
type Role uint8

const (
	Guest Role = iota + 1
	Member
)
