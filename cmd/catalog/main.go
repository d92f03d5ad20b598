package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - import:   Load a YAML catalog into Postgres and/or Elasticsearch
// - validate: Check a YAML catalog without writing anything

func main() {
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	importFile := importCmd.String("file", "places.yaml", "Catalog file to import")
	importTarget := importCmd.String("target", targetPostgres, "Where to import: postgres, elastic or all")

	validateFile := validateCmd.String("file", "places.yaml", "Catalog file to validate")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	flags := catalogFlags{
		Import: importFlags{
			cmd:    importCmd,
			file:   importFile,
			target: importTarget,
		},
		Validate: validateFlags{
			cmd:  validateCmd,
			file: validateFile,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

type catalogFlags struct {
	Import   importFlags
	Validate validateFlags
}

type importFlags struct {
	cmd    *flag.FlagSet
	file   *string
	target *string
}

type validateFlags struct {
	cmd  *flag.FlagSet
	file *string
}

func runSubcommand(ctx context.Context, flags *catalogFlags) error {
	switch os.Args[1] {
	case "import":
		return handleImport(ctx, flags)
	case "validate":
		return handleValidate(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleImport(ctx context.Context, flags *catalogFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}

	return runImport(ctx, *flags.Import.file, *flags.Import.target)
}

func handleValidate(flags *catalogFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	catalog, err := loadCatalog(*flags.Validate.file)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d places OK\n", *flags.Validate.file, len(catalog))

	return nil
}

func printUsage() {
	fmt.Println("Usage: catalog <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  import      Import a YAML place catalog (-file, -target postgres|elastic|all)")
	fmt.Println("  validate    Validate a YAML place catalog (-file)")
	fmt.Println("")
	fmt.Println("Use 'catalog <command> -h' for more information about a command.")
}
