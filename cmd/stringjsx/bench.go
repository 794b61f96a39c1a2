package main

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"text/tabwriter"

	"github.com/spf13/cobra"

	. "github.com/vango-dev/stringjsx/el"
	"github.com/vango-dev/stringjsx/pkg/render"
	"github.com/vango-dev/stringjsx/pkg/tree"
)

// scenario is one benchmarked render.
type scenario struct {
	Name string
	Fn   func() SafeHTML
}

// BenchResult is one row of bench output.
type BenchResult struct {
	Name        string  `json:"name"`
	Ops         int     `json:"ops"`
	NsPerOp     int64   `json:"ns_per_op"`
	OpsPerSec   float64 `json:"ops_per_sec"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
}

func benchCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the renderer",
		Long: `Run the render benchmarks and report operations per second.

Scenarios render a p tag through H and through the el package, a one
child structure, a complex structure, the complex structure built from
pseudo-components, and the same tree parsed from a YAML document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runBench(a)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			return printBench(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

const benchDocument = `
tag: div
attrs: {class: my-page}
children:
  - tag: MyTable
    children:
      - {tag: Item, attrs: {item: "1"}, children: [stuff]}
      - {tag: Item, attrs: {item: "2"}, children: [things]}
      - {tag: Item, attrs: {item: "3"}, children: [lols]}
`

func benchScenarios(a *app) ([]scenario, error) {
	r := a.renderer()
	reg := builtinComponents()

	node, err := tree.Parse([]byte(benchDocument), tree.WithMaxDepth(r.MaxDepth()))
	if err != nil {
		return nil, err
	}

	return []scenario{
		{Name: "p tag (H)", Fn: func() SafeHTML {
			return render.H(render.El("p"), render.Attrs{{Key: "class", Value: "text"}}, "lol")
		}},
		{Name: "p tag", Fn: func() SafeHTML {
			return P(Class("text"), "lol")
		}},
		{Name: "1 child structure", Fn: func() SafeHTML {
			return Div(P(Class("f-text r-text"), "lolem ipsum"))
		}},
		{Name: "complex structure", Fn: func() SafeHTML {
			return Div(Class("container"),
				H3("lorem"),
				P(Class("description"), "ipsum"),
				Table(Tbody(Tr(
					Div(Class("realdata"), Span(Class("make-it-pretty"), "data")),
				))),
			)
		}},
		{Name: "complex structure w/ pseudo-components", Fn: func() SafeHTML {
			return Div(Class("my-page"),
				Comp(MyTable,
					Comp(Item, AttrOf("item", "1"), "stuff"),
					Comp(Item, AttrOf("item", "2"), "things"),
					Comp(Item, AttrOf("item", "3"), "lols"),
				),
			)
		}},
		{Name: "document w/ pseudo-components", Fn: func() SafeHTML {
			html, err := node.Eval(r, reg)
			if err != nil {
				panic(err)
			}
			return html
		}},
	}, nil
}

func runBench(a *app) ([]BenchResult, error) {
	scenarios, err := benchScenarios(a)
	if err != nil {
		return nil, err
	}

	results := make([]BenchResult, 0, len(scenarios))
	for _, sc := range scenarios {
		a.logger.Debug("benchmarking", "scenario", sc.Name)
		fn := sc.Fn
		res := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = fn()
			}
		})
		results = append(results, newBenchResult(sc.Name, res))
	}
	return results, nil
}

func newBenchResult(name string, res testing.BenchmarkResult) BenchResult {
	out := BenchResult{
		Name:        name,
		Ops:         res.N,
		NsPerOp:     res.NsPerOp(),
		BytesPerOp:  res.AllocedBytesPerOp(),
		AllocsPerOp: res.AllocsPerOp(),
	}
	if res.T > 0 {
		out.OpsPerSec = float64(res.N) / res.T.Seconds()
	}
	return out
}

func printBench(w io.Writer, results []BenchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tOPS/SEC\tNS/OP\tB/OP\tALLOCS/OP")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.0f\t%d\t%d\t%d\n", r.Name, r.OpsPerSec, r.NsPerOp, r.BytesPerOp, r.AllocsPerOp)
	}
	return tw.Flush()
}
