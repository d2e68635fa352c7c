package domain

type State string

const (
	StateStart                 State = "start"
	StateVersionChecked        State = "version_checked"
	StateDependenciesInstalled State = "dependencies_installed"
	StateConfigWritten         State = "config_written"
	StateExtensionsAttempted   State = "extensions_attempted"
	StateVerified              State = "verified"
	StateSuccess               State = "success"
	StateFailed                State = "failed"
)

type ConfigOutcome string

const (
	ConfigWritten ConfigOutcome = "written"
	ConfigKept    ConfigOutcome = "kept"
)
