// Command resolve-demo runs the core resolver against a small in-memory
// registry described by a TOML file, and prints the resulting graph.
//
// Grounded on the teacher's own toml.go (github.com/pelletier/go-toml) for
// config parsing and its example.go/cmd/dep pairing for wiring a provider to
// the solver entry point — neither of which is part of package resolve
// itself (spec §1 places "any outer driver that constructs inputs" out of
// scope for the core).
package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/solvecorp/resolve/demo"
	"github.com/solvecorp/resolve/internal/rlog"
	"github.com/solvecorp/resolve/resolve"
)

type fileConfig struct {
	Verbose   bool                   `toml:"verbose"`
	Requested []fileRequirement      `toml:"requested"`
	Registry  map[string]filePackage `toml:"registry"`
}

type fileRequirement struct {
	Package    string `toml:"package"`
	Constraint string `toml:"constraint"`
	Optional   bool   `toml:"optional"`
}

type filePackage struct {
	Versions []fileVersion `toml:"versions"`
}

type fileVersion struct {
	Version      string            `toml:"version"`
	Dependencies []fileRequirement `toml:"dependencies"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: resolve-demo <config.toml>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	reg := make(demo.Registry, len(cfg.Registry))
	for name, pkg := range cfg.Registry {
		entries := make([]demo.RegistryEntry, len(pkg.Versions))
		for i, v := range pkg.Versions {
			deps := make([]demo.Requirement, len(v.Dependencies))
			for j, d := range v.Dependencies {
				deps[j] = demo.Requirement{Package: d.Package, Constraint: d.Constraint, Optional: d.Optional}
			}
			entries[i] = demo.RegistryEntry{Version: v.Version, Dependencies: deps}
		}
		reg[name] = entries
	}

	requested := make([]resolve.Requirement, len(cfg.Requested))
	for i, r := range cfg.Requested {
		requested[i] = demo.Requirement{Package: r.Package, Constraint: r.Constraint, Optional: r.Optional}
	}

	provider := demo.NewProvider(reg)
	ui := demo.NewUI(rlog.New(os.Stdout), cfg.Verbose)

	graph, err := resolve.Resolve(provider, ui, requested, nil)
	if err != nil {
		return err
	}

	for _, name := range graph.VertexNames() {
		vtx, _ := graph.VertexNamed(name)
		if vtx.HasPayload() {
			fmt.Printf("%s -> %v\n", name, vtx.Payload)
		} else {
			fmt.Printf("%s -> (no payload)\n", name)
		}
	}
	return nil
}
