package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// prefix is accepted but not required in front of a console line.
const prefix = "cmd"

// Command is a subcommand with its own flags and a Run function.
// Run is called after FlagSet.Parse and receives the remaining positional arguments.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs may be nil for commands without flags.
// Parse errors are returned, not printed.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Usage returns the one-line usage of name, or "" if unknown.
func (r *Registry) Usage(name string) string {
	if c, ok := r.cmds[name]; ok {
		return c.Usage
	}
	return ""
}

// Parse splits a console line into tokens, dropping an optional leading "cmd".
// ok is false for blank lines.
func Parse(line string) (args []string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) > 0 && fields[0] == prefix {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

// Execute runs the subcommand in args[0] with args[1:] as flags and positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}
