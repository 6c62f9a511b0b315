package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/homequant/buyrent/cmd/buyrent/internal/emi"
	"github.com/homequant/buyrent/cmd/buyrent/internal/growth"
	"github.com/homequant/buyrent/cmd/buyrent/internal/mc"
	"github.com/homequant/buyrent/cmd/buyrent/internal/scen"
	"github.com/homequant/buyrent/cmd/buyrent/internal/tenure"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "emi":
		return emi.Run(args[1:], stdin, stdout, stderr)
	case "scenarios":
		return scen.Run(args[1:], stdin, stdout, stderr)
	case "growth":
		return growth.Run(args[1:], stdin, stdout, stderr)
	case "tenure":
		return tenure.Run(args[1:], stdin, stdout, stderr)
	case "montecarlo", "mc":
		return mc.Run(args[1:], stdin, stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: buyrent <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  emi         Monthly installment and year-1 interest/principal split")
	fmt.Fprintln(w, "  scenarios   Base/Boom/Crash NPV comparison table")
	fmt.Fprintln(w, "  growth      House-growth sensitivity sweep with break-even")
	fmt.Fprintln(w, "  tenure      Holding-horizon sweep with break-even")
	fmt.Fprintln(w, "  montecarlo  Correlated-growth Monte Carlo win probability")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `buyrent <command> -h` for command-specific help.")
}
