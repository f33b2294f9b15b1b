package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	toggleFlagTypeName      = "bool"
	toggleTrueLiteral       = "true"
	toggleAcceptedLiterals  = "true, false, yes, no, on, off, 1, 0"
	errorToggleValueFormat  = "invalid boolean value %q for --%s; accepted values: %s"
	flagAssignmentSeparator = "="
	longFlagPrefix          = "--"
)

var toggleLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// parseToggleLiteral interprets yes/no style literals. An empty value means true.
func parseToggleLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return true, true
	}
	parsed, known := toggleLiterals[normalized]
	return parsed, known
}

// toggleValue is a pflag.Value accepting every literal in toggleLiterals.
type toggleValue struct {
	target   *bool
	flagName string
}

func (value *toggleValue) Set(input string) error {
	parsed, known := parseToggleLiteral(input)
	if !known {
		return fmt.Errorf(errorToggleValueFormat, input, value.flagName, toggleAcceptedLiterals)
	}
	*value.target = parsed
	return nil
}

func (value *toggleValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *toggleValue) Type() string {
	return toggleFlagTypeName
}

// registerToggleFlag binds a boolean flag that may be written as --name,
// --name=no, or --name off.
func registerToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	*target = defaultValue
	flagSet.Var(&toggleValue{target: target, flagName: name}, name, usage)
	registered := flagSet.Lookup(name)
	registered.DefValue = strconv.FormatBool(defaultValue)
	registered.NoOptDefVal = toggleTrueLiteral
}

// normalizeToggleArguments rewrites "--name value" pairs into "--name=value"
// for toggle flags so pflag does not treat the literal as a positional argument.
// A literal that also names a subcommand or alias is left for cobra to route.
func normalizeToggleArguments(command *cobra.Command, arguments []string) []string {
	toggleNames := map[string]struct{}{}
	collectToggleNames(command, toggleNames)
	if len(toggleNames) == 0 {
		return arguments
	}
	commandNames := map[string]struct{}{}
	collectCommandNames(command, commandNames)
	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == longFlagPrefix {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		flagName, isLongFlag := strings.CutPrefix(argument, longFlagPrefix)
		_, isToggle := toggleNames[flagName]
		if isLongFlag && isToggle && !strings.Contains(flagName, flagAssignmentSeparator) && index+1 < len(arguments) {
			nextArgument := arguments[index+1]
			_, namesCommand := commandNames[nextArgument]
			if _, known := toggleLiterals[strings.ToLower(strings.TrimSpace(nextArgument))]; known && !namesCommand {
				normalized = append(normalized, longFlagPrefix+flagName+flagAssignmentSeparator+nextArgument)
				index++
				continue
			}
		}
		normalized = append(normalized, argument)
	}
	return normalized
}

func collectToggleNames(command *cobra.Command, target map[string]struct{}) {
	record := func(flag *pflag.Flag) {
		if flag.Value.Type() == toggleFlagTypeName {
			target[flag.Name] = struct{}{}
		}
	}
	command.PersistentFlags().VisitAll(record)
	command.Flags().VisitAll(record)
	for _, child := range command.Commands() {
		collectToggleNames(child, target)
	}
}

func collectCommandNames(command *cobra.Command, target map[string]struct{}) {
	for _, child := range command.Commands() {
		target[child.Name()] = struct{}{}
		for _, alias := range child.Aliases {
			target[alias] = struct{}{}
		}
		collectCommandNames(child, target)
	}
}
