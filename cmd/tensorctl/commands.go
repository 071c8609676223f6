// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/lvtensor/builder"
	"github.com/katalvlaran/lvtensor/contract"
	"github.com/katalvlaran/lvtensor/notation"
	"github.com/katalvlaran/lvtensor/tensor"
)

// newFlagSet returns a subcommand flag set writing diagnostics to stderr.
func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet("tensorctl "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	return fs
}

// parse wraps flag errors as usage errors and rejects positional arguments.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}

		return fmt.Errorf("%v: %w", err, errUsage)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q: %w", fs.Arg(0), errUsage)
	}

	return nil
}

func required(flagName, value string) error {
	if value == "" {
		return fmt.Errorf("-%s is required: %w", flagName, errUsage)
	}

	return nil
}

// loadOpts read stored tensors without the NaN/Inf policy: results may have overflowed.
var loadOpts = []tensor.Option{tensor.WithNoValidateNaNInf()}

func cmdRandom(e *env, args []string) error {
	fs := newFlagSet(e, "random")
	name := fs.String("name", "", "tensor name (required)")
	shapeText := fs.String("shape", "", `shape such as "2,2,2" or "3x3x3x3" (required)`)
	seed := fs.Int64("seed", 0, "RNG seed (0 picks one from the clock and prints it)")
	density := fs.Float64("density", builder.DefaultDensity, "probability that a cell is stored")
	lo := fs.Float64("lo", builder.DefaultLo, "lower value bound (inclusive)")
	hi := fs.Float64("hi", builder.DefaultHi, "upper value bound (exclusive)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}
	shape, err := builder.ParseShape(*shapeText)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	t, err := builder.Random(shape,
		builder.WithSeed(*seed),
		builder.WithDensity(*density),
		builder.WithRange(*lo, *hi),
	)
	if err != nil {
		return err
	}
	if err = e.db.Put(e.ctx, *name, t); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: rank %d, %d entries, shape %s, seed %d\n",
		*name, t.Rank(), t.Len(), builder.FormatShape(t.Shape()), *seed)

	return nil
}

func cmdSequential(e *env, args []string) error {
	fs := newFlagSet(e, "sequential")
	name := fs.String("name", "", "tensor name (required)")
	shapeText := fs.String("shape", "", "shape (required)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}
	shape, err := builder.ParseShape(*shapeText)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	t, err := builder.Sequential(shape)
	if err != nil {
		return err
	}
	if err = e.db.Put(e.ctx, *name, t); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: rank %d, %d entries, shape %s\n",
		*name, t.Rank(), t.Len(), builder.FormatShape(t.Shape()))

	return nil
}

func cmdLoad(e *env, args []string) error {
	fs := newFlagSet(e, "load")
	name := fs.String("name", "", "tensor name (required)")
	file := fs.String("file", "", "read from this file instead of stdin")
	decimalComma := fs.Bool("decimal-comma", false, `read "1,5" as 1.5`)
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}

	var (
		text []byte
		err  error
	)
	if *file != "" {
		text, err = os.ReadFile(*file)
	} else {
		text, err = io.ReadAll(e.stdin)
	}
	if err != nil {
		return err
	}
	var opts []notation.Option
	if *decimalComma {
		opts = append(opts, notation.WithDecimalComma())
	}
	t, err := notation.Parse(string(text), opts...)
	if err != nil {
		return err
	}
	if err = e.db.Put(e.ctx, *name, t); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: rank %d, %d entries, shape %s\n",
		*name, t.Rank(), t.Len(), builder.FormatShape(t.Shape()))

	return nil
}

func cmdShow(e *env, args []string) error {
	fs := newFlagSet(e, "show")
	name := fs.String("name", "", "tensor name (required)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}
	t, err := e.db.Get(e.ctx, *name, loadOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, notation.Format(t))

	return nil
}

func cmdShape(e *env, args []string) error {
	fs := newFlagSet(e, "shape")
	name := fs.String("name", "", "tensor name (required)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}
	t, err := e.db.Get(e.ctx, *name, loadOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "rank %d, %d entries, shape %s\n", t.Rank(), t.Len(), builder.FormatShape(t.Shape()))

	return nil
}

func cmdMultiply(e *env, args []string) error {
	fs := newFlagSet(e, "multiply")
	nameA := fs.String("a", "", "left operand (required)")
	nameB := fs.String("b", "", "right operand (required)")
	methodText := fs.String("method", "", "method: 1..5, a name such as cayley2, or a signature such as (0,2) (required)")
	out := fs.String("out", "", "store the result under this name")
	if err := parse(fs, args); err != nil {
		return err
	}
	for _, f := range [][2]string{{"a", *nameA}, {"b", *nameB}, {"method", *methodText}} {
		if err := required(f[0], f[1]); err != nil {
			return err
		}
	}
	m, err := contract.ParseMethod(*methodText)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}

	a, err := e.db.Get(e.ctx, *nameA, loadOpts...)
	if err != nil {
		return err
	}
	b, err := e.db.Get(e.ctx, *nameB, loadOpts...)
	if err != nil {
		return err
	}
	rep, err := e.runner.Multiply(e.ctx, a, b, m)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, rep.String())
	if *out != "" {
		if err = e.db.Put(e.ctx, *out, rep.Result); err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "stored as %s\n", *out)
	}

	return nil
}

func cmdList(e *env, args []string) error {
	fs := newFlagSet(e, "list")
	if err := parse(fs, args); err != nil {
		return err
	}
	names, err := e.db.List(e.ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRANK\tENTRIES\tSHAPE")
	for _, n := range names {
		t, err := e.db.Get(e.ctx, n, loadOpts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", n, t.Rank(), t.Len(), builder.FormatShape(t.Shape()))
	}

	return tw.Flush()
}

func cmdRemove(e *env, args []string) error {
	fs := newFlagSet(e, "rm")
	name := fs.String("name", "", "tensor name (required)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("name", *name); err != nil {
		return err
	}

	return e.db.Delete(e.ctx, *name)
}

func cmdMethods(e *env, args []string) error {
	fs := newFlagSet(e, "methods")
	if err := parse(fs, args); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAGGREGATION\tOUTPUT RANK (3x3, 4x4, 3x4, 4x3)\tDESCRIPTION")
	for _, m := range contract.Methods() {
		ranks := ""
		for i, p := range contract.RankPairs() {
			r, err := contract.OutputRank(m, p.A, p.B)
			if err != nil {
				return err
			}
			if i > 0 {
				ranks += ", "
			}
			ranks += fmt.Sprint(r)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", int(m), m, m.Aggregation(), ranks, m.Describe())
	}

	return tw.Flush()
}
