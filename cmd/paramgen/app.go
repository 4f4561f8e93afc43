package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lkretschmer/paramgen"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	tableTemplate = "Parameter,Go Parameter,Type,Description,Values\n" +
		"limit*,,integer,maximum items to return,\n" +
		"noCache,NoCache,Bool,disable cached results,0|1\n"

	strideTemplate = "<PARAM_NAME>\n<TYPE>\n<DESCRIPTION>\n\n<NEXT_PARAM_NAME>\n...\n\n" +
		"Select the parameter table in the API documentation and paste it into a text file.\n" +
		"Every parameter takes three lines followed by a blank line. A trailing '*' on the\n" +
		"name marks the parameter as required.\n"
)

// Sets up the logging.
func setupLogging(ctx *cli.Context) error {
	log.SetOutput(ctx.App.ErrWriter)
	if ctx.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	if ctx.Bool("trace") {
		log.SetLevel(log.TraceLevel)
	}
	return nil
}

func App() *cli.App {
	return &cli.App{
		Name:      "paramgen",
		Usage:     "generate Go struct fields from API parameter tables",
		ArgsUsage: "COMMAND",
		Before:    setupLogging,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug mode",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "enable trace mode",
			},
		},
		Action: func(ctx *cli.Context) error {
			if !ctx.Args().Present() {
				_ = cli.ShowAppHelp(ctx)
				return cli.Exit("missing command", 1)
			}
			return cli.Exit(fmt.Sprintf("unknown command %q", ctx.Args().First()), 1)
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Aliases:   []string{"gen"},
				Usage:     "print the struct fields for a parameter table",
				ArgsUsage: "PATH",
				Action:    generateCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "name of the generated struct type",
						Value:   paramgen.DefaultStructName,
					},
					&cli.BoolFlag{
						Name:  "bare",
						Usage: "print the field lines only, without the type declaration",
					},
					&cli.StringFlag{
						Name:  "delimiter",
						Usage: "read the input as a table with this field separator (\"tab\" for TSV)",
					},
					&cli.StringFlag{
						Name:    "types",
						Aliases: []string{"t"},
						Usage:   "YAML file with additional type mappings",
						EnvVars: []string{"PARAMGEN_TYPES"},
					},
					&cli.IntFlag{
						Name:    "width",
						Aliases: []string{"w"},
						Usage:   "wrap width of the comments",
						Value:   paramgen.DefaultWidth,
						EnvVars: []string{"PARAMGEN_WIDTH"},
					},
					&cli.StringFlag{
						Name:  "marker",
						Usage: "suffix marking a parameter as required",
						Value: paramgen.DefaultMarker,
					},
					&cli.BoolFlag{
						Name:  "gofmt",
						Usage: "align the output with gofmt",
					},
				},
			},
			{
				Name:      "template",
				Usage:     "print an input template (csv, tsv or txt)",
				ArgsUsage: "[FORMAT]",
				Action:    templateCmd,
			},
			{
				Name:      "client",
				Usage:     "generate client methods (not implemented)",
				ArgsUsage: "PATH",
				Action: func(ctx *cli.Context) error {
					return cli.Exit("client generation is not implemented", 1)
				},
			},
		},
	}
}

func generateCmd(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		fmt.Fprintf(ctx.App.ErrWriter, "Usage: %s generate [options] PATH\n", ctx.App.Name)
		return cli.Exit("expected exactly one input path", 1)
	}

	opts, err := generatorOptions(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	path := ctx.Args().First()
	if err := paramgen.New(opts...).Generate(path, ctx.App.Writer); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func generatorOptions(ctx *cli.Context) ([]paramgen.Option, error) {
	if ctx.String("marker") == "" {
		return nil, fmt.Errorf("marker must not be empty")
	}

	opts := []paramgen.Option{
		paramgen.WithLogger(log.StandardLogger()),
		paramgen.WithWidth(ctx.Int("width")),
		paramgen.WithMarker(ctx.String("marker")),
		paramgen.WithLayout(paramgen.StructLayout(ctx.String("name"))),
	}

	if ctx.Bool("bare") {
		opts = append(opts, paramgen.WithLayout(paramgen.BareLayout()))
	}
	if ctx.Bool("gofmt") {
		opts = append(opts, paramgen.WithGoFormat())
	}

	if ctx.IsSet("delimiter") {
		d, err := parseDelimiter(ctx.String("delimiter"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, paramgen.WithDelimiter(d))
	}

	if path := ctx.String("types"); path != "" {
		custom, err := paramgen.LoadTypeMapping(path)
		if err != nil {
			return nil, err
		}
		log.WithField("rules", custom.Len()).Debug("loaded custom type mapping")
		opts = append(opts, paramgen.WithTypeMapping(paramgen.DefaultTypeMapping().Extend(custom.Rules()...)))
	}

	return opts, nil
}

// parseDelimiter accepts a single character or one of the names "tab", "comma", "semicolon".
func parseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

func templateCmd(ctx *cli.Context) error {
	format := "csv"
	if ctx.Args().Present() {
		format = strings.ToLower(ctx.Args().First())
	}
	switch format {
	case "csv":
		fmt.Fprint(ctx.App.Writer, tableTemplate)
	case "tsv":
		fmt.Fprint(ctx.App.Writer, strings.ReplaceAll(tableTemplate, ",", "\t"))
	case "txt", "text":
		fmt.Fprint(ctx.App.Writer, strideTemplate)
	default:
		return cli.Exit(fmt.Sprintf("unknown template format %q", format), 1)
	}
	return nil
}
