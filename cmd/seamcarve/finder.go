package main

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/astar"
	"github.com/katalvlaran/seamcarve/bellmanford"
	"github.com/katalvlaran/seamcarve/dijkstra"
	"github.com/katalvlaran/seamcarve/internal/config"
	"github.com/katalvlaran/seamcarve/seam"
	"github.com/katalvlaran/seamcarve/shortestpath"
	"github.com/katalvlaran/seamcarve/spfa"
	"github.com/katalvlaran/seamcarve/toposort"
)

// newFinder maps the configured finder and solver names to a seam.Finder.
func newFinder(cfg config.Config) (seam.Finder, error) {
	switch cfg.Finder {
	case "dp":
		return seam.NewDynamicProgrammingFinder(), nil
	case "generative":
		return seam.NewGenerativeFinder(), nil
	case "adjacency":
		factory, err := newFactory(cfg.Solver)
		if err != nil {
			return nil, err
		}
		return seam.NewAdjacencyListFinder(factory, seam.WithEnergyCache(cfg.EnergyCache))
	}

	return nil, fmt.Errorf("%w: finder %q", config.ErrInvalid, cfg.Finder)
}

func newFactory(name string) (shortestpath.Factory[int], error) {
	switch name {
	case "dijkstra":
		return dijkstra.Factory[int](), nil
	case "bellmanford":
		return bellmanford.Factory[int](), nil
	case "spfa":
		return spfa.Factory[int](), nil
	case "toposort":
		return toposort.Factory[int](), nil
	case "astar":
		return astar.Factory[int](seam.SinkVertex), nil
	}

	return nil, fmt.Errorf("%w: solver %q", config.ErrInvalid, name)
}
