package lineedit

// Status reports the outcome of a session, history, or terminal operation.
// The first four values are control-flow signals rather than errors: they
// describe how an edit ended (or that it hasn't). The rest are failures.
type Status int

const (
	// Success means the operation completed; after EditFeed or ReadLine it
	// means a full line is available via Text.
	Success Status = iota

	// Editing means the user is still editing and EditFeed must be called
	// again when more input is available.
	Editing

	// End means input ended (Ctrl-D on an empty line, or EOF on read).
	End

	// Interrupted means the edit was interrupted with Ctrl-C.
	Interrupted

	// NoMemory means an allocation failed.
	NoMemory

	// NoFile means a file could not be opened.
	NoFile

	// BadRead means a read from the input descriptor failed.
	BadRead

	// BadWrite means a write to the output descriptor failed.
	BadWrite

	// BadTerminal means the terminal attributes could not be queried or set.
	BadTerminal
)

var statusNames = map[Status]string{
	Success:     "success",
	Editing:     "editing",
	End:         "end of input",
	Interrupted: "interrupted",
	NoMemory:    "out of memory",
	NoFile:      "no such file",
	BadRead:     "read failed",
	BadWrite:    "write failed",
	BadTerminal: "terminal configuration failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown status"
}

// Failed reports whether s is an error rather than a control-flow signal.
func (s Status) Failed() bool {
	return s >= NoMemory
}
