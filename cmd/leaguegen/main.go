package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/nottschess/leaguegen/internal/example"
	"github.com/nottschess/leaguegen/internal/oracle"
	"github.com/nottschess/leaguegen/internal/report"
	"github.com/nottschess/leaguegen/internal/schedule"
	"github.com/nottschess/leaguegen/internal/store"
)

var (
	validBackends = []string{"gophersat", "gini"}
	backends      = map[string]func() oracle.Solver{
		"gophersat": func() oracle.Solver { return oracle.NewGophersat() },
		"gini":      func() oracle.Solver { return oracle.NewGini() },
	}
)

const usage = `usage: leaguegen <command> [flags] <file>

Commands:
  save    write an example league document
  solve   assign a date to every fixture of a league document
  report  render a solved league as HTML
  csv     export a solved league as CSV

Run "leaguegen <command> -h" for the flags of each command.
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	switch os.Args[1] {
	case "save":
		runSave(os.Args[2:])
	case "solve":
		runSolve(os.Args[2:])
	case "report":
		runReport(os.Args[2:])
	case "csv":
		runCSV(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		log.Fatalf("unknown command %q", os.Args[1])
	}
}

func runSave(args []string) {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	exampleName := fs.String("example", example.NottsName, "Example league to write. Allowed values are: \"notts\", where \"notts\" is the default")
	fs.Parse(args)
	path := inputPath(fs, "an output file must be specified")

	l, err := example.Build(strings.ToLower(*exampleName))
	if err != nil {
		log.Fatalf("cannot build example league: %v", err)
	}
	if err := store.Save(path, l); err != nil {
		log.Fatalf("cannot write league document: %v", err)
	}
	fmt.Printf("wrote %v (%v fixtures)\n", path, len(l.Fixtures()))
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	backendPtr := fs.String("backend", "gophersat", "Solver backend to use. Allowed values are: \"gophersat\" (optimizing) and \"gini\" (first feasible solution), where \"gophersat\" is the default")
	adjacentSoft := fs.Bool("adjacent-soft", false, "Penalize same-day matches of a club's adjacent teams instead of forbidding them")
	outFile := fs.String("out", "", "Path where the solved document will be written; if empty, the input file is overwritten")
	fs.Parse(args)
	path := inputPath(fs, "an input file must be specified")

	backend := strings.ToLower(*backendPtr)
	if !slices.Contains(validBackends, backend) {
		log.Fatalf("%v is not a valid backend", backend)
	}

	l, err := store.Load(path)
	if err != nil {
		log.Fatalf("cannot load league document: %v", err)
	}

	policy := schedule.DefaultPolicy()
	policy.AdjacentTeamsHard = !*adjacentSoft

	scheduler := schedule.New(l, backends[backend](), policy)
	result, err := scheduler.Solve()
	if err != nil {
		log.Fatalf("cannot solve league: %v", err)
	}
	fmt.Printf("%v (cost %v)\n", result.Status, result.Cost)

	if violations := schedule.Verify(l, policy); len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "violation: %v\n", v)
		}
		os.Exit(15)
	}

	out := *outFile
	if out == "" {
		out = path
	}
	if err := store.Save(out, l); err != nil {
		log.Fatalf("cannot write solved document: %v", err)
	}
	fmt.Printf("wrote %v\n", out)
}

func runReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	outFile := fs.String("out", "", "Path to the HTML file; if empty, the report is written to the Standard Output")
	fs.Parse(args)
	path := inputPath(fs, "an input file must be specified")

	l, err := store.Load(path)
	if err != nil {
		log.Fatalf("cannot load league document: %v", err)
	}
	writeOutput(*outFile, func(w *os.File) error {
		return report.WriteHTML(w, l)
	})
}

func runCSV(args []string) {
	fs := flag.NewFlagSet("csv", flag.ExitOnError)
	outFile := fs.String("out", "", "Path to the CSV file; if empty, the rows are written to the Standard Output")
	fs.Parse(args)
	path := inputPath(fs, "an input file must be specified")

	l, err := store.Load(path)
	if err != nil {
		log.Fatalf("cannot load league document: %v", err)
	}
	writeOutput(*outFile, func(w *os.File) error {
		return report.WriteCSV(w, l)
	})
}

func inputPath(fs *flag.FlagSet, missing string) string {
	if fs.NArg() != 1 {
		log.Fatal(missing)
	}
	return fs.Arg(0)
}

func writeOutput(path string, render func(*os.File) error) {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := render(w); err != nil {
		log.Fatalf("cannot render output: %v", err)
	}
	if path != "" {
		fmt.Printf("wrote %v\n", path)
	}
}
