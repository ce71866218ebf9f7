package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/graphlink/graphlink/internal/graph"
	"github.com/graphlink/graphlink/internal/introspection"
	"github.com/graphlink/graphlink/internal/language"
	"github.com/graphlink/graphlink/internal/otel"
)

const rootUsage = `graphlink — GraphQL schema & document linker

USAGE:
  graphlink <command> [flags]

COMMANDS:
  compile          Load SDL files, link them into a schema, and print SDL
  check            Build an executable document and print it as JSON
  introspect       Link a schema and print its introspection JSON
  help             Show help for any command
`

const compileUsage = `compile FLAGS:
  -root <dir>            Directory holding .graphql SDL files (default: .)
  -out <file>            Write linked SDL to file (default: stdout)
  -otel.endpoint <addr>  OTLP collector endpoint
  -otel.service <name>   OpenTelemetry service name (default: graphlink)
  (Linking always runs; exits non-zero on errors)
`

const checkUsage = `check FLAGS:
  -query <file>          Executable document to build (required)
  -out <file>            Write document JSON to file (default: stdout)
  -pretty                Pretty-print JSON output
`

const introspectUsage = `introspect FLAGS:
  -root <dir>            Directory holding .graphql SDL files (default: .)
  -out <file>            Write introspection JSON to file (default: stdout)
  -pretty                Pretty-print JSON output
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "compile":
		return cmdCompile(cmdArgs)
	case "check":
		return cmdCheck(cmdArgs)
	case "introspect":
		return cmdIntrospect(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "compile":
		fmt.Print(compileUsage)
	case "check":
		fmt.Print(checkUsage)
	case "introspect":
		fmt.Print(introspectUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdCompile(args []string) error {
	root := "."
	outFile := ""
	otelEndpoint := ""
	otelService := "graphlink"

	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer)) // silence automatic output
	fs.StringVar(&root, "root", root, "Directory holding .graphql SDL files")
	fs.StringVar(&outFile, "out", outFile, "Write linked SDL to file")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, compileUsage)
		return err
	}

	ctx := context.Background()
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	schema, err := graph.LoadSchema(ctx, graph.NewFileSystemSource(root))
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	sdl := graph.Render(schema)
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}

func cmdIntrospect(args []string) error {
	root := "."
	outFile := ""
	pretty := false

	fs := flag.NewFlagSet("introspect", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&root, "root", root, "Directory holding .graphql SDL files")
	fs.StringVar(&outFile, "out", outFile, "Write introspection JSON to file")
	fs.BoolVar(&pretty, "pretty", pretty, "Pretty-print JSON output")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, introspectUsage)
		return err
	}

	schema, err := graph.LoadSchema(context.Background(), graph.NewFileSystemSource(root))
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	resp := introspection.Describe(schema)

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(resp, "", "  ")
	} else {
		out, err = json.Marshal(resp)
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if outFile == "" {
		fmt.Print(string(out))
		return nil
	}
	return os.WriteFile(outFile, out, 0644)
}

func cmdCheck(args []string) error {
	queryFile := ""
	outFile := ""
	pretty := false

	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&queryFile, "query", queryFile, "Executable document to build")
	fs.StringVar(&outFile, "out", outFile, "Write document JSON to file")
	fs.BoolVar(&pretty, "pretty", pretty, "Pretty-print JSON output")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}
	if queryFile == "" {
		fmt.Fprint(os.Stderr, checkUsage)
		return fmt.Errorf("-query is required")
	}

	content, err := os.ReadFile(queryFile)
	if err != nil {
		return err
	}
	parsed, err := language.ParseQuery(queryFile, string(content))
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}
	doc, err := graph.BuildDocument(context.Background(), parsed)
	if err != nil {
		return fmt.Errorf("build document: %w", err)
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if outFile == "" {
		fmt.Print(string(out))
		return nil
	}
	return os.WriteFile(outFile, out, 0644)
}
