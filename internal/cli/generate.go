package cli

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/edom/builder"
	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/dimacs"
	"github.com/katalvlaran/edom/gridgraph"
)

// generator describes one graph family reachable from "edom generate".
type generator struct {
	params []string
	build  func(p []int, prob float64) builder.Constructor
}

var generators = map[string]generator{
	"path":     {params: []string{"n"}, build: func(p []int, _ float64) builder.Constructor { return builder.Path(p[0]) }},
	"cycle":    {params: []string{"n"}, build: func(p []int, _ float64) builder.Constructor { return builder.Cycle(p[0]) }},
	"star":     {params: []string{"n"}, build: func(p []int, _ float64) builder.Constructor { return builder.Star(p[0]) }},
	"wheel":    {params: []string{"n"}, build: func(p []int, _ float64) builder.Constructor { return builder.Wheel(p[0]) }},
	"complete": {params: []string{"n"}, build: func(p []int, _ float64) builder.Constructor { return builder.Complete(p[0]) }},
	"isolated": {params: []string{"n"}, build: func(p []int, _ float64) builder.Constructor { return builder.Isolated(p[0]) }},
	"bipartite": {params: []string{"a", "b"}, build: func(p []int, _ float64) builder.Constructor {
		return builder.CompleteBipartite(p[0], p[1])
	}},
	"grid": {params: []string{"rows", "cols"}, build: func(p []int, _ float64) builder.Constructor {
		return builder.Grid(p[0], p[1])
	}},
	"grid3d": {params: []string{"x", "y", "z"}, build: func(p []int, _ float64) builder.Constructor {
		return builder.Grid3D(p[0], p[1], p[2])
	}},
	"regular": {params: []string{"n", "d"}, build: func(p []int, _ float64) builder.Constructor {
		return builder.RandomRegular(p[0], p[1])
	}},
	// gnp takes its probability as the trailing float parameter.
	"gnp": {params: []string{"n", "p"}, build: func(p []int, prob float64) builder.Constructor {
		return builder.RandomGNP(p[0], prob)
	}},
}

// planKind reads a floor plan instead of building a family.
const planKind = "plan"

func generatorKinds() string {
	kinds := []string{planKind + " file"}
	for k, g := range generators {
		kinds = append(kinds, k+" "+strings.Join(g.params, " "))
	}
	sort.Strings(kinds)

	return strings.Join(kinds, "\n  ")
}

// runGenerate implements "edom generate [-seed S] [-diag] [-o file] <kind> <params>".
func runGenerate(args []string, env Env) error {
	fs := flag.NewFlagSet(programName+" generate", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	seed := fs.Int64("seed", 1, "seed for random families")
	out := fs.String("o", "", "output path (default stdout)")
	diag := fs.Bool("diag", false, "plan: diagonal neighbours are adjacent")
	fs.Usage = func() {
		fmt.Fprintf(env.Stderr, "usage: %s generate [flags] <kind> <params>\n\nkinds:\n  %s\n\nflags:\n",
			programName, generatorKinds())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}

		return &ExitError{Code: ExitUsage, Err: err}
	}

	var (
		g    *core.Graph
		kind string
		err  error
	)
	if fs.NArg() > 0 && strings.ToLower(fs.Arg(0)) == planKind {
		g, kind, err = plan(fs.Args()[1:], *diag)
	} else {
		g, kind, err = generate(fs.Args(), *seed)
	}
	if err != nil {
		return err
	}
	comment := fmt.Sprintf("%s %s seed=%d", kind, strings.Join(fs.Args()[1:], " "), *seed)
	if *out != "" {
		return dimacs.Save(*out, g, comment)
	}

	return dimacs.Write(env.Stdout, g, comment)
}

// generate resolves kind and its parameters and builds the graph.
func generate(args []string, seed int64) (*core.Graph, string, error) {
	if len(args) == 0 {
		return nil, "", usageErrorf("generate: missing graph kind; kinds:\n  %s", generatorKinds())
	}
	kind := strings.ToLower(args[0])
	gen, ok := generators[kind]
	if !ok {
		return nil, "", usageErrorf("generate: unknown kind %q; kinds:\n  %s", args[0], generatorKinds())
	}
	vals := args[1:]
	if len(vals) != len(gen.params) {
		return nil, "", usageErrorf("generate: %s expects %s", kind, strings.Join(gen.params, " "))
	}

	var (
		ints []int
		prob float64
	)
	for i, v := range vals {
		if kind == "gnp" && gen.params[i] == "p" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, "", usageErrorf("generate: %s: p must be a number, got %q", kind, v)
			}
			prob = f
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, "", usageErrorf("generate: %s: %s must be an integer, got %q", kind, gen.params[i], v)
		}
		ints = append(ints, n)
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, gen.build(ints, prob))
	if err != nil {
		return nil, "", &ExitError{Code: ExitUsage, Err: err}
	}

	return g, kind, nil
}

// plan converts a floor plan file to a graph.
func plan(args []string, diag bool) (*core.Graph, string, error) {
	if len(args) != 1 {
		return nil, "", usageErrorf("generate: plan expects file")
	}
	opts := gridgraph.DefaultGridOptions()
	if diag {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.Load(args[0], opts)
	if err != nil {
		return nil, "", err
	}
	g, err := gg.ToGraph()
	if err != nil {
		return nil, "", err
	}

	return g, planKind, nil
}
