package sdk

// Logger receives the terse pipe-delimited event lines every mutating
// operation emits. Watchers replay state from these without diffing storage.
type Logger interface {
	Log(line string)
}

// MemoryLogger collects lines so tests can assert on emitted events.
type MemoryLogger struct {
	Lines []string
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(line string) {
	l.Lines = append(l.Lines, line)
}

// Last returns the most recent line or empty when nothing was logged yet.
func (l *MemoryLogger) Last() string {
	if len(l.Lines) == 0 {
		return ""
	}
	return l.Lines[len(l.Lines)-1]
}

// FuncLogger adapts any line sink (like the sim's structured logger) to Logger.
type FuncLogger func(line string)

func (f FuncLogger) Log(line string) {
	f(line)
}
