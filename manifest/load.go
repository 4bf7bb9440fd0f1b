package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/cmdtree/command"
	"github.com/vk/cmdtree/internal/ctxlog"
	"github.com/vk/cmdtree/internal/fsutil"
	"github.com/vk/cmdtree/registry"
)

// topLevelSchema is the HCL schema for a manifest file as a whole: one root
// `cli` block across the set, plus any number of contributed `command`
// blocks that become children of the root.
var topLevelSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "cli", LabelNames: []string{"name"}},
		{Type: "command", LabelNames: []string{"name"}},
	},
}

// Load reads one .hcl file, or every .hcl file under a directory, and
// builds the validated command tree they declare. Handler references are
// resolved through reg as they are decoded; a reference to an unregistered
// handler fails the load.
func Load(ctx context.Context, path string, reg *registry.Registry) (*command.Command, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := discover(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found in %s", path)
	}
	logger.Debug("Loading command manifests.", "files", files)

	d := &decoder{reg: reg, used: make(map[string]bool)}
	parser := hclparse.NewParser()

	var root *command.Command
	var contributed []*hcl.Block

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}
		content, diags := hclFile.Body.Content(topLevelSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid manifest %s: %w", file, diags)
		}

		for _, block := range content.Blocks.OfType("cli") {
			if root != nil {
				return nil, fmt.Errorf("manifest %s: a root cli block was already defined as %q", file, root.Name)
			}
			root, diags = d.decodeCommand(block, true)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid manifest %s: %w", file, diags)
			}
		}
		contributed = append(contributed, content.Blocks.OfType("command")...)
	}

	if root == nil {
		return nil, fmt.Errorf("no cli block found in %s", path)
	}

	for _, block := range contributed {
		child, diags := d.decodeCommand(block, false)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid manifest: %w", diags)
		}
		if _, dup := root.Children[child.Name]; dup {
			return nil, fmt.Errorf("command %q is defined more than once", child.Name)
		}
		root.Children[child.Name] = child
	}

	if err := root.Validate(); err != nil {
		return nil, err
	}

	// Parity report, the mirror of the dangling-handler check: registered
	// handlers no manifest ever bound are worth knowing about, but they do
	// not fail the load.
	for _, name := range reg.Names() {
		if !d.used[name] {
			logger.Warn("Registered handler is not referenced by any manifest.", "handler", name)
		}
	}

	logger.Debug("Command tree loaded.", "root", root.Name, "commands", len(root.Children))
	return root, nil
}

func discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return fsutil.FindFilesByExtension(path, ".hcl")
	}
	return []string{path}, nil
}
