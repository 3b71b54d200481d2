package failure

// Code does not type-check.
type Code int

const (
	OK  Code = 0
	Bad Code = "bad"
)
