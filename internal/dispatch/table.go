package dispatch

// Entry is one built command together with the flag that produced it
type Entry struct {
	Flag    Flag
	Command string
}

// Table maps each flag to the commands built for it.
// Flags keep the order of their first occurrence.
type Table struct {
	order    []Flag
	commands map[Flag][]string
}

// NewTable creates an empty Table
func NewTable() *Table {
	return &Table{commands: make(map[Flag][]string)}
}

// Append adds a command under the flag
func (t *Table) Append(flag Flag, command string) {
	if _, ok := t.commands[flag]; !ok {
		t.order = append(t.order, flag)
	}
	t.commands[flag] = append(t.commands[flag], command)
}

// Flags returns the flags in first-occurrence order
func (t *Table) Flags() []Flag {
	out := make([]Flag, len(t.order))
	copy(out, t.order)
	return out
}

// Commands returns the commands built for a flag, in insertion order
func (t *Table) Commands(flag Flag) []string {
	cmds := t.commands[flag]
	out := make([]string, len(cmds))
	copy(out, cmds)
	return out
}

// Has reports whether the flag produced at least one command
func (t *Table) Has(flag Flag) bool {
	_, ok := t.commands[flag]
	return ok
}

// IsEmpty reports whether no command was built
func (t *Table) IsEmpty() bool {
	return len(t.order) == 0
}

// Len returns the total number of commands
func (t *Table) Len() int {
	n := 0
	for _, cmds := range t.commands {
		n += len(cmds)
	}
	return n
}

// Entries flattens the table into execution order
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.Len())
	for _, flag := range t.order {
		for _, cmd := range t.commands[flag] {
			entries = append(entries, Entry{Flag: flag, Command: cmd})
		}
	}
	return entries
}
