package source

type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	_
	Thursday
)

type level int

const (
	Debug level = -4
	Info  level = 0
	Warn  level = 4
	Error level = 8
)

// Unrelated constants are ignored.
const Answer = 42

type Name string
