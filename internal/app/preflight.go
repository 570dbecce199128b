package app

import (
	"fmt"
	"io"

	"github.com/lazyvibe/ratcycle/internal/cycler"
	"github.com/lazyvibe/ratcycle/internal/ui/styles"
	"github.com/lazyvibe/ratcycle/pkg/utils"
)

var resolveExecutable = utils.ResolveExecutable

// ToolStatus is the lookup result for one required executable.
type ToolStatus struct {
	Name  string
	Path  string
	Found bool
}

// Preflight is the result of checking that required executables exist.
type Preflight struct {
	Tools []ToolStatus
}

// CheckTools resolves each named executable once, in order.
func CheckTools(names ...string) Preflight {
	seen := make(map[string]bool, len(names))
	var p Preflight
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		path, found := resolveExecutable(name)
		p.Tools = append(p.Tools, ToolStatus{Name: name, Path: path, Found: found})
	}
	return p
}

// OK reports whether every tool was found.
func (p Preflight) OK() bool {
	return len(p.Missing()) == 0
}

// Missing returns the names of tools that were not found.
func (p Preflight) Missing() []string {
	var missing []string
	for _, t := range p.Tools {
		if !t.Found {
			missing = append(missing, t.Name)
		}
	}
	return missing
}

// Err returns a tool-missing error, or nil when every tool was found.
func (p Preflight) Err() error {
	missing := p.Missing()
	if len(missing) == 0 {
		return nil
	}
	return cycler.MissingToolsError(missing)
}

// Report writes the list of missing tools followed by a single exit line.
func (p Preflight) Report(w io.Writer) {
	missing := p.Missing()
	if len(missing) == 0 {
		return
	}
	fmt.Fprintln(w, styles.ErrorHeader.Render("The following required system commands are missing:"))
	for _, name := range missing {
		fmt.Fprintln(w, styles.ListItem.Render(name))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Footer.Render("ratcycle cannot proceed without the commands above. Exiting"))
}
