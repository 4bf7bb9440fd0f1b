package command

import (
	"context"
	"strings"

	"github.com/vk/cmdtree/schema"
)

// Handler is the function invoked for a resolved command. A handler that
// wants to do asynchronous work manages its own goroutines; its returned
// error is the awaited completion, and it propagates to the caller
// untouched.
type Handler func(ctx context.Context, res *Result) error

// Command is one named node in the command hierarchy. Build the tree with
// struct literals, then call Validate once on the root before parsing; the
// tree must not be mutated afterwards.
type Command struct {
	Name        string
	Description string

	// Version is the explicit version string reported for --version. Only
	// meaningful on the root; when empty, the build info of the embedding
	// binary is used instead.
	Version string

	// Options declared on this node. Descendants inherit them unless they
	// redefine the same name.
	Options *schema.Options

	// Positionals declared on this node. Not inherited.
	Positionals *schema.Positionals

	// Run is the handler, absent for pure command groups.
	Run Handler

	// Children maps child name to node.
	Children map[string]*Command

	// Default names the direct child to descend into when no child token is
	// present.
	Default string
}

// Validate checks the structural integrity of the tree rooted at c: child
// map keys must match child names, a declared default must name a direct
// child, and no name may look like a flag. Descriptor-level validation
// already happened in schema.NewOptions/NewPositionals.
func (c *Command) Validate() error {
	if c.Name == "" {
		return &schema.Error{Detail: "command name must not be empty"}
	}
	if strings.HasPrefix(c.Name, "-") {
		return &schema.Error{Subject: c.Name, Detail: "command name must not start with a dash"}
	}
	for name, child := range c.Children {
		if child == nil {
			return &schema.Error{Subject: c.Name, Detail: "child " + name + " is nil"}
		}
		if child.Name != name {
			return &schema.Error{Subject: c.Name, Detail: "child map key " + name + " does not match child name " + child.Name}
		}
		if err := child.Validate(); err != nil {
			return err
		}
	}
	if c.Default != "" {
		if _, ok := c.Children[c.Default]; !ok {
			return &schema.Error{Subject: c.Name, Detail: "default command " + c.Default + " is not a direct child"}
		}
	}
	return nil
}

// childNames returns the names of all direct children, for suggestions.
func (c *Command) childNames() []string {
	names := make([]string, 0, len(c.Children))
	for name := range c.Children {
		names = append(names, name)
	}
	return names
}

// group reports whether this node only routes to children and cannot itself
// be the final resolved command.
func (c *Command) group() bool {
	return c.Run == nil && len(c.Children) > 0
}
