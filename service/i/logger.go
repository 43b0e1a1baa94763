package i

// Logger is the leveled logger every component writes through.
type Logger interface {
	Info(string)
	Warn(string)
	Error(string)
}
