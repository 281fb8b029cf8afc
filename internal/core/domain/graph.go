package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Graph is the flattened dependency graph: one resolved version per project.
// It is immutable after BuildGraph returns, so concurrent resolutions read
// it without locking.
type Graph struct {
	entries map[InternedName]DependencyEntry
}

// BuildGraph flattens raw dependency entries into a project->version map.
//
// It fails with ErrVersionConflict when two parents pin the same project at
// different versions (an inconsistent choice could point two parts of one
// page at incompatible asset versions), and with ErrCycleDetected when the
// parent edges do not form a DAG. Both checks run here so per-request Lookup
// is a plain map access. Frozen versions raise a pin that is older than what
// was live when the deploy snapshot was taken.
func BuildGraph(raw []DependencyEntry, frozen map[string]string) (*Graph, error) {
	entries := make(map[InternedName]DependencyEntry, len(raw))

	for _, entry := range raw {
		existing, ok := entries[entry.Project]
		if !ok {
			entries[entry.Project] = entry
			continue
		}
		if existing.Version != entry.Version {
			err := zerr.Wrap(ErrVersionConflict, "project pinned at two versions")
			err = zerr.With(err, "project", entry.Project.String())
			err = zerr.With(err, "version_a", existing.Version)
			err = zerr.With(err, "parent_a", existing.Parent.String())
			err = zerr.With(err, "version_b", entry.Version)
			err = zerr.With(err, "parent_b", entry.Parent.String())
			return nil, err
		}
		// Same project reached via two parents at the same version is fine;
		// the first declaration wins for parent attribution.
	}

	if err := checkAcyclic(raw); err != nil {
		return nil, err
	}

	for name, entry := range entries {
		if min, ok := frozen[name.String()]; ok {
			entry.Version = MaxBuildName(entry.Version, min)
			entries[name] = entry
		}
	}

	return &Graph{entries: entries}, nil
}

// checkAcyclic runs a colour-marked DFS over the parent->project edges.
func checkAcyclic(raw []DependencyEntry) error {
	children := make(map[InternedName][]InternedName)
	nodes := make(map[InternedName]bool)
	for _, entry := range raw {
		nodes[entry.Project] = true
		if entry.Parent.String() != "" {
			nodes[entry.Parent] = true
			children[entry.Parent] = append(children[entry.Parent], entry.Project)
		}
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[InternedName]int, len(nodes))
	var path []InternedName

	var visit func(n InternedName) error
	visit = func(n InternedName) error {
		state[n] = visiting
		path = append(path, n)

		for _, child := range children[n] {
			switch state[child] {
			case visiting:
				return cycleError(path, child)
			case unvisited:
				if err := visit(child); err != nil {
					return err
				}
			}
		}

		state[n] = done
		path = path[:len(path)-1]
		return nil
	}

	// Deterministic iteration so the same broken config always names the
	// same cycle.
	ordered := make([]InternedName, 0, len(nodes))
	for n := range nodes {
		ordered = append(ordered, n)
	}
	slices.SortFunc(ordered, func(a, b InternedName) int {
		return compareNames(a, b)
	})

	for _, n := range ordered {
		if state[n] == unvisited {
			if err := visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}

func cycleError(path []InternedName, repeated InternedName) error {
	start := 0
	for i, n := range path {
		if n == repeated {
			start = i
			break
		}
	}
	cycle := ""
	for _, n := range path[start:] {
		cycle += n.String() + " -> "
	}
	cycle += repeated.String()
	return zerr.With(zerr.Wrap(ErrCycleDetected, "dependency edges do not form a DAG"), "cycle", cycle)
}

func compareNames(a, b InternedName) int {
	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// Lookup returns the resolved entry for a project name.
func (g *Graph) Lookup(project InternedName) (DependencyEntry, bool) {
	entry, ok := g.entries[project]
	return entry, ok
}

// Projects returns all graph project names, sorted.
func (g *Graph) Projects() []InternedName {
	names := make([]InternedName, 0, len(g.entries))
	for n := range g.entries {
		names = append(names, n)
	}
	slices.SortFunc(names, compareNames)
	return names
}

// Len reports the number of projects in the graph.
func (g *Graph) Len() int {
	return len(g.entries)
}
