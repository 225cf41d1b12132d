// docshots — Placeholder screenshots for the ClockPilot documentation.
//
// Usage:
//
//	docshots [-root <dir>] [-manifest <path>] [-keep-going] [-v]
//	docshots list [-manifest <path>]
//	docshots init [-o <path>]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/clockpilot/docshots/pkg/mockup"
)

func main() {
	args := os.Args[1:]

	var err error
	switch {
	case len(args) == 0:
		err = run(nil, os.Stdout, os.Stderr)
	case args[0] == "list":
		err = runList(args[1:], os.Stdout)
	case args[0] == "init":
		err = runInit(args[1:], os.Stdout)
	case args[0] == "help" || args[0] == "-h" || args[0] == "--help":
		printUsage()
	default:
		// Default: generate mode (all flags on root).
		err = run(args, os.Stdout, os.Stderr)
	}
	if err != nil {
		fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("docshots", flag.ExitOnError)

	var (
		root         string
		manifestPath string
		keepGoing    bool
		verbose      bool
	)

	fs.StringVar(&root, "root", "", "Directory relative output paths are resolved against")
	fs.StringVar(&manifestPath, "manifest", "", "Manifest JSON replacing the built-in image list")
	fs.BoolVar(&keepGoing, "keep-going", false, "Continue after a failed image and report failures at the end")
	fs.BoolVar(&verbose, "v", false, "Print the font used for each image")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, specs, err := loadConfig(manifestPath)
	if err != nil {
		return err
	}

	for _, w := range mockup.ValidateSpecs(specs) {
		fmt.Fprintf(stderr, "Warning: %s\n", w)
	}

	renderer := mockup.NewRenderer(cfg, stdout)
	renderer.Verbose = verbose

	return mockup.RunAll(renderer, specs, mockup.BatchOptions{
		Root:      root,
		KeepGoing: keepGoing,
		Stderr:    stderr,
	})
}

// loadConfig returns the default setup, or the manifest's when one is given.
func loadConfig(manifestPath string) (mockup.Config, []mockup.Spec, error) {
	cfg := mockup.DefaultConfig()
	if manifestPath == "" {
		return cfg, mockup.DefaultSpecs(), nil
	}

	m, err := mockup.LoadManifest(manifestPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("load manifest: %w", err)
	}
	cfg, err = m.Apply(cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("apply manifest: %w", err)
	}
	return cfg, m.Specs, nil
}

func runList(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var manifestPath string
	fs.StringVar(&manifestPath, "manifest", "", "Manifest JSON to list instead of the built-in images")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, specs, err := loadConfig(manifestPath)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, mockup.FormatCatalog(specs))
	return nil
}

func runInit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var out string
	fs.StringVar(&out, "o", "manifest.json", "Output path for the sample manifest")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(out, []byte(mockup.ExampleManifest()), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	fmt.Fprintf(stdout, "Created: %s\n", out)
	fmt.Fprintf(stdout, "Run: docshots -manifest %s\n", out)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`docshots — Placeholder screenshots for the documentation

USAGE:
    docshots [options]
    docshots list [-manifest <path>]
    docshots init [-o <path>]

GENERATE (default):
    -root <dir>            Resolve relative output paths against dir (default: .)
    -manifest <path>       Manifest JSON replacing the built-in image list
    -keep-going            Continue after a failed image, report at the end
    -v                     Print the font used for each image

LIST:
    docshots list          Print the images that would be generated

INIT:
    docshots init          Write a sample manifest.json

EXAMPLES:
    docshots
    docshots -root /tmp/site -keep-going
    docshots init -o shots.json && docshots -manifest shots.json
`)
}
