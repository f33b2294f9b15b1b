// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/shelltree/internal/commands"
	"github.com/temirov/shelltree/internal/config"
	"github.com/temirov/shelltree/internal/output"
	"github.com/temirov/shelltree/internal/services/clipboard"
	"github.com/temirov/shelltree/internal/types"
	"github.com/temirov/shelltree/internal/utils"
)

const (
	formatFlagName       = "format"
	summaryFlagName      = "summary"
	copyFlagName         = "copy"
	thresholdFlagName    = "threshold"
	capacityFlagName     = "capacity"
	requiredFlagName     = "required"
	configFlagName       = "config"
	verboseFlagName      = "verbose"
	globalFlagName       = "global"
	forceFlagName        = "force"
	versionTemplate      = "shelltree version: {{.Version}}\n"
	rootUse              = "shelltree"
	rootShortDescription = "shelltree command line interface"
	rootLongDescription  = `shelltree reconstructs a directory tree from a recorded shell session
of "$ cd" and "$ ls" commands and answers size questions about it.
Transcripts are read from files or from standard input when no file or "-" is given.
Use --format to select raw, json, or xml output, and --version to print the application version.`
	analyzeUse                = "analyze [transcripts...]"
	treeUse                   = "tree [transcripts...]"
	parseUse                  = "parse [transcripts...]"
	initUse                   = "init"
	analyzeAlias              = "a"
	treeAlias                 = "t"
	parseAlias                = "p"
	analyzeShortDescription   = "report deletable and smallest sufficient directories (" + analyzeAlias + ")"
	treeShortDescription      = "display the reconstructed directory tree (" + treeAlias + ")"
	parseShortDescription     = "list recognized transcript statements (" + parseAlias + ")"
	initShortDescription      = "write a default configuration file"
	versionFlagDescription    = "display application version"
	configFlagDescription     = "path to a configuration file used instead of ./config.yaml"
	verboseFlagDescription    = "log progress details to standard error"
	formatFlagDescription     = "output format (raw, json, xml)"
	summaryFlagDescription    = "include file and directory counts"
	copyFlagDescription       = "copy rendered output to the clipboard"
	thresholdFlagDescription  = "directories with a total below this size count toward the deletable total"
	capacityFlagDescription   = "total disk capacity"
	requiredFlagDescription   = "unused space that must be available after deletion"
	globalFlagDescription     = "write the configuration under the home directory"
	forceFlagDescription      = "overwrite an existing configuration file"
	invalidFormatMessage      = "invalid format value '%s'"
	negativeFlagMessage       = "--%s must not be negative, got %d"
	configurationWrittenLine  = "configuration written to %s\n"
	logMessageConfiguration   = "configuration loaded"
	logMessageTranscript      = "transcript processed"
	logMessageClipboardCopied = "output copied to clipboard"
	logMessageNoSufficient    = "no directory frees enough space"
	logFieldReason            = "reason"
	logFieldCommand           = "command"
	logFieldSource            = "source"
	logFieldBytes             = "bytes"
	logFieldStatements        = "statements"
	logFieldDeletable         = "deletable_total"
	logFieldSmallest          = "smallest_sufficient"

	// analyzeLongDescription provides detailed help for the analyze command.
	analyzeLongDescription = `Replay one or more transcripts and answer two questions for each:
the sum of totals of every directory whose total is below --threshold, and the
smallest directory whose deletion leaves at least --required unused bytes on a
disk of --capacity bytes. When no directory is large enough the deletable total
is still printed and the second answer is reported as none.`
	// analyzeUsageExample demonstrates analyze command usage.
	analyzeUsageExample = `  # Analyze a recorded session
  shelltree analyze session.txt

  # Read from standard input with a custom threshold in JSON
  cat session.txt | shelltree analyze --threshold 50000 --format json`

	// treeLongDescription provides detailed help for the tree command.
	treeLongDescription = `Render the directory tree reconstructed from each transcript.
Directories show their recursive total size.`
	// treeUsageExample demonstrates tree command usage.
	treeUsageExample = `  # Render the tree in XML format
  shelltree tree --format xml session.txt

  # Render without the summary line and copy it
  shelltree t --summary=false --copy session.txt`

	parseLongDescription = `List every statement recognized in each transcript with its line number.`
	parseUsageExample    = `  shelltree parse session.txt`
	initLongDescription  = `Write a configuration file holding the default flag values.
The file is written to ./config.yaml, or to ~/.shelltree/config.yaml with --global.`
	initUsageExample = `  shelltree init --global`
)

// applicationDependencies are the collaborators shared by every command.
type applicationDependencies struct {
	logger      *zap.Logger
	loggerLevel zap.AtomicLevel
	copier      clipboard.Copier
}

// applicationState holds values resolved by the root command before a subcommand runs.
type applicationState struct {
	applicationDependencies
	configurationPath string
	verbose           bool
	configuration     config.ApplicationConfiguration
}

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// Execute runs the shelltree application.
func Execute(logger *zap.Logger, loggerLevel zap.AtomicLevel) error {
	rootCommand := createRootCommand(applicationDependencies{
		logger:      logger,
		loggerLevel: loggerLevel,
		copier:      clipboard.NewService(),
	})
	rootCommand.SetArgs(normalizeToggleArguments(rootCommand, os.Args[1:]))
	return rootCommand.ExecuteContext(context.Background())
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies applicationDependencies) *cobra.Command {
	state := &applicationState{applicationDependencies: dependencies}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Version:      utils.GetApplicationVersion(),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if state.verbose {
				state.loggerLevel.SetLevel(zapcore.DebugLevel)
			}
			loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
				ExplicitFilePath: state.configurationPath,
			})
			if loadError != nil {
				return loadError
			}
			state.configuration = loadedConfiguration
			state.logger.Debug(logMessageConfiguration, zap.String(logFieldCommand, command.Name()))
			return nil
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.Flags().Bool("version", false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&state.configurationPath, configFlagName, "", configFlagDescription)
	registerToggleFlag(rootCommand.PersistentFlags(), &state.verbose, verboseFlagName, false, verboseFlagDescription)
	rootCommand.AddCommand(
		createAnalyzeCommand(state),
		createTreeCommand(state),
		createParseCommand(state),
		createInitCommand(state),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// renderOptions carries per-invocation output settings.
type renderOptions struct {
	format     string
	copyOutput bool
	raw        output.RawOptions
}

// createAnalyzeCommand returns the analyze subcommand.
func createAnalyzeCommand(state *applicationState) *cobra.Command {
	var outputFormat string
	var copyEnabled bool
	analysisOptions := commands.DefaultAnalysisOptions()

	analyzeCommand := &cobra.Command{
		Use:     analyzeUse,
		Aliases: []string{analyzeAlias},
		Short:   analyzeShortDescription,
		Long:    analyzeLongDescription,
		Example: analyzeUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			defaults := state.configuration.Analyze
			flags := command.Flags()
			if !flags.Changed(formatFlagName) && defaults.Format != "" {
				outputFormat = defaults.Format
			}
			if !flags.Changed(thresholdFlagName) && defaults.Threshold != nil {
				analysisOptions.Threshold = *defaults.Threshold
			}
			if !flags.Changed(capacityFlagName) && defaults.Capacity != nil {
				analysisOptions.Capacity = *defaults.Capacity
			}
			if !flags.Changed(requiredFlagName) && defaults.RequiredFree != nil {
				analysisOptions.RequiredFree = *defaults.RequiredFree
			}
			if !flags.Changed(copyFlagName) && defaults.Clipboard != nil {
				copyEnabled = *defaults.Clipboard
			}
			if validationError := validateAnalysisOptions(analysisOptions); validationError != nil {
				return validationError
			}
			return runCommand(command, state, types.CommandAnalyze, arguments, renderOptions{format: outputFormat, copyOutput: copyEnabled},
				func(source commands.Source) (interface{}, error) {
					analysis, analysisError := commands.AnalyzeTranscript(source, analysisOptions)
					if analysisError != nil {
						return nil, analysisError
					}
					if analysis.SmallestSufficient == nil {
						state.logger.Warn(logMessageNoSufficient,
							zap.String(logFieldSource, source.Name),
							zap.String(logFieldReason, analysis.Unavailable))
						return analysis, nil
					}
					state.logger.Debug(logMessageTranscript,
						zap.String(logFieldSource, source.Name),
						zap.Int64(logFieldDeletable, analysis.DeletableTotal),
						zap.String(logFieldSmallest, analysis.SmallestSufficient.Path))
					return analysis, nil
				})
		},
	}

	analyzeCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatRaw, formatFlagDescription)
	analyzeCommand.Flags().Int64Var(&analysisOptions.Threshold, thresholdFlagName, commands.DefaultThreshold, thresholdFlagDescription)
	analyzeCommand.Flags().Int64Var(&analysisOptions.Capacity, capacityFlagName, commands.DefaultCapacity, capacityFlagDescription)
	analyzeCommand.Flags().Int64Var(&analysisOptions.RequiredFree, requiredFlagName, commands.DefaultRequiredFree, requiredFlagDescription)
	registerToggleFlag(analyzeCommand.Flags(), &copyEnabled, copyFlagName, false, copyFlagDescription)
	return analyzeCommand
}

func validateAnalysisOptions(options commands.AnalysisOptions) error {
	namedValues := []struct {
		name  string
		value int64
	}{
		{name: thresholdFlagName, value: options.Threshold},
		{name: capacityFlagName, value: options.Capacity},
		{name: requiredFlagName, value: options.RequiredFree},
	}
	for _, namedValue := range namedValues {
		if namedValue.value < 0 {
			return fmt.Errorf(negativeFlagMessage, namedValue.name, namedValue.value)
		}
	}
	return nil
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand(state *applicationState) *cobra.Command {
	var outputFormat string
	var summaryEnabled bool
	var copyEnabled bool

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			defaults := state.configuration.Tree
			flags := command.Flags()
			if !flags.Changed(formatFlagName) && defaults.Format != "" {
				outputFormat = defaults.Format
			}
			if !flags.Changed(summaryFlagName) && defaults.Summary != nil {
				summaryEnabled = *defaults.Summary
			}
			if !flags.Changed(copyFlagName) && defaults.Clipboard != nil {
				copyEnabled = *defaults.Clipboard
			}
			treeBuilder := &commands.TreeBuilder{IncludeSummary: summaryEnabled}
			options := renderOptions{
				format:     outputFormat,
				copyOutput: copyEnabled,
				raw: output.RawOptions{
					IncludeSummary: summaryEnabled,
					Highlight:      !color.NoColor && !copyEnabled,
				},
			}
			return runCommand(command, state, types.CommandTree, arguments, options,
				func(source commands.Source) (interface{}, error) {
					rootNode, treeError := treeBuilder.GetTreeData(source)
					if treeError != nil {
						return nil, treeError
					}
					state.logger.Debug(logMessageTranscript,
						zap.String(logFieldSource, source.Name),
						zap.Int64(logFieldBytes, rootNode.Size))
					return rootNode, nil
				})
		},
	}

	treeCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerToggleFlag(treeCommand.Flags(), &summaryEnabled, summaryFlagName, true, summaryFlagDescription)
	registerToggleFlag(treeCommand.Flags(), &copyEnabled, copyFlagName, false, copyFlagDescription)
	return treeCommand
}

// createParseCommand returns the parse subcommand.
func createParseCommand(state *applicationState) *cobra.Command {
	var outputFormat string
	var copyEnabled bool

	parseCommand := &cobra.Command{
		Use:     parseUse,
		Aliases: []string{parseAlias},
		Short:   parseShortDescription,
		Long:    parseLongDescription,
		Example: parseUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runCommand(command, state, types.CommandParse, arguments, renderOptions{format: outputFormat, copyOutput: copyEnabled},
				func(source commands.Source) (interface{}, error) {
					parsed, parseError := commands.ParseTranscript(source)
					if parseError != nil {
						return nil, parseError
					}
					state.logger.Debug(logMessageTranscript,
						zap.String(logFieldSource, source.Name),
						zap.Int(logFieldStatements, len(parsed.Statements)))
					return parsed, nil
				})
		},
	}

	parseCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerToggleFlag(parseCommand.Flags(), &copyEnabled, copyFlagName, false, copyFlagDescription)
	return parseCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(state *applicationState) *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:     initUse,
		Short:   initShortDescription,
		Long:    initLongDescription,
		Example: initUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: forceOverwrite})
			if initError != nil {
				return initError
			}
			_, printError := fmt.Fprintf(command.OutOrStdout(), configurationWrittenLine, writtenPath)
			return printError
		},
	}

	registerToggleFlag(initCommand.Flags(), &globalTarget, globalFlagName, false, globalFlagDescription)
	registerToggleFlag(initCommand.Flags(), &forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runCommand loads transcripts, processes them concurrently, and renders the
// results in input order.
func runCommand(
	command *cobra.Command,
	state *applicationState,
	commandName string,
	arguments []string,
	options renderOptions,
	process func(commands.Source) (interface{}, error),
) error {
	format := strings.ToLower(options.format)
	if !isSupportedFormat(format) {
		return fmt.Errorf(invalidFormatMessage, format)
	}
	sources, loadError := commands.LoadSources(arguments, command.InOrStdin())
	if loadError != nil {
		return loadError
	}
	collected, processError := commands.ProcessSources(command.Context(), sources, process)
	if processError != nil {
		return processError
	}

	var rendered bytes.Buffer
	if renderError := output.Render(&rendered, format, commandName, collected, options.raw); renderError != nil {
		return renderError
	}
	if _, writeError := command.OutOrStdout().Write(rendered.Bytes()); writeError != nil {
		return writeError
	}
	if options.copyOutput {
		if copyError := state.copier.Copy(rendered.String()); copyError != nil {
			return copyError
		}
		state.logger.Debug(logMessageClipboardCopied, zap.Int(logFieldBytes, rendered.Len()))
	}
	return nil
}
