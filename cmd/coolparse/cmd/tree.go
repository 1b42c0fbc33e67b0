package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/pattyshack/gt/parseutil"
	"github.com/pattyshack/gt/stringutil"
	"github.com/spf13/cobra"

	"github.com/pattyshack/coolparse/analyzer"
	"github.com/pattyshack/coolparse/ast"
	"github.com/pattyshack/coolparse/config"
	"github.com/pattyshack/coolparse/parser"
	"github.com/pattyshack/coolparse/parser/lexer"
	"github.com/pattyshack/coolparse/parser/reducer"
)

var (
	treeFormat    string
	treeMaxErrors int
	treeColor     bool
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>...",
	Short: "Parse COOL files and print their syntax trees",
	Long: `Parses each file and prints its syntax tree in argument order.

Formats:
  tree  - bracketed tree with labelled children
  cool  - the reference COOL parser dump, read by later COOL stages
  yaml  - YAML document

Examples:
  coolparse tree hello.cl
  coolparse tree --format cool list.cl main.cl
  coolparse tree --max-errors 10 broken.cl`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringVarP(&treeFormat, "format", "f", "", "output format: tree, cool or yaml")
	treeCmd.Flags().IntVar(&treeMaxErrors, "max-errors", 0, "syntax error limit per file")
	treeCmd.Flags().BoolVar(&treeColor, "color", false, "colorize diagnostics")
}

type parseResult struct {
	fileName string
	program  *ast.Program
	emitter  *parseutil.Emitter
	err      error
}

func parseFile(
	fileName string,
	options parser.Options,
) parseResult {
	result := parseResult{
		fileName: fileName,
		emitter:  &parseutil.Emitter{},
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		result.err = err
		return result
	}

	pool := stringutil.NewInternPool()
	p := parser.NewParser(
		lexer.NewLexer(
			parseutil.NewBufferedByteLocationReaderFromSlice(fileName, content),
			pool),
		reducer.NewReducer(pool),
		result.emitter,
		options)

	result.program, result.err = p.Parse()
	return result
}

// parseFiles parses every file concurrently.  Each file has its own
// interner and emitter.  Results are in argument order.
func parseFiles(
	fileNames []string,
	options parser.Options,
	logger *slog.Logger,
) []parseResult {
	results := make([]parseResult, len(fileNames))

	wg := sync.WaitGroup{}
	wg.Add(len(fileNames))
	for idx, fileName := range fileNames {
		go func(idx int, fileName string) {
			defer wg.Done()

			fileOptions := options
			fileOptions.Logger = logger.With("file", fileName)
			results[idx] = parseFile(fileName, fileOptions)
		}(idx, fileName)
	}
	wg.Wait()

	return results
}

func applyTreeFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = treeFormat
	}
	if cmd.Flags().Changed("max-errors") {
		cfg.Parser.MaxErrors = treeMaxErrors
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = treeColor
	}
	return cfg.Validate()
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if err := applyTreeFlags(cmd, cfg); err != nil {
		return err
	}

	stderr := printer{out: os.Stderr, color: cfg.Output.Color}

	results := parseFiles(
		args,
		parser.Options{
			MaxErrors: cfg.Parser.MaxErrors,
			Logger:    logger,
		},
		logger)

	failed := false
	programs := []*ast.Program{}
	for _, result := range results {
		for _, diagnostic := range result.emitter.Errors() {
			stderr.println(errorStyle, diagnostic.Error())
		}

		if result.err == nil {
			programs = append(programs, result.program)
			continue
		}

		failed = true

		var tooMany *parser.TooManyErrorsError
		switch {
		case errors.As(result.err, &tooMany):
			stderr.println(errorStyle, tooMany.Error())
		case errors.Is(result.err, parser.ErrSyntax):
		default:
			stderr.println(
				errorStyle,
				fmt.Sprintf("%s: %v", result.fileName, result.err))
		}
	}

	if failed {
		stderr.println(haltStyle, ErrHalted.Error())
		return ErrHalted
	}

	validationEmitter := &parseutil.Emitter{}
	analyzer.Analyze(programs, validationEmitter)
	if validationEmitter.HasErrors() {
		for _, err := range validationEmitter.Errors() {
			stderr.println(errorStyle, err.Error())
		}
		stderr.println(haltStyle, ErrHalted.Error())
		return ErrHalted
	}

	stdout := printer{out: os.Stdout, color: cfg.Output.Color}
	for idx, program := range programs {
		if len(programs) > 1 && cfg.Output.Format == config.FormatTree {
			stdout.println(headerStyle, "File name: "+args[idx])
		}

		err := writeProgram(cfg.Output.Format, program)
		if err != nil {
			return err
		}
	}

	if len(programs) > 1 {
		stderr.println(
			summaryStyle,
			fmt.Sprintf("parsed %d files", len(programs)))
	}

	return nil
}

func writeProgram(format string, program *ast.Program) error {
	switch format {
	case config.FormatCool:
		return ast.DumpCool(os.Stdout, program)
	case config.FormatYAML:
		return ast.FprintYAML(os.Stdout, program)
	default:
		err := ast.PrintTree(os.Stdout, program, "")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout)
		return err
	}
}
