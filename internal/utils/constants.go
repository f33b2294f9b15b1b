package utils

const (
	// ConfigFileName is the name of both the local and the global configuration file.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".shelltree"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// StandardInputName selects standard input instead of a transcript file.
	StandardInputName = "-"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "shelltree failed"
)
