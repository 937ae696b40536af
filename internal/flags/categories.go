package flags

import "github.com/urfave/cli/v2"

const (
	EngineCategory      = "ENGINE"
	EventSourceCategory = "EVENT SOURCES"
	SigningCategory     = "SIGNING"
	RelayCategory       = "RELAY"
	StrategyCategory    = "STRATEGY"
	MetricsCategory     = "METRICS AND STATS"
	LoggingCategory     = "LOGGING AND DEBUGGING"
	MiscCategory        = "MISC"
	DeprecatedCategory  = "ALIASED (deprecated)"
)

func init() {
	cli.HelpFlag.(*cli.BoolFlag).Category = MiscCategory
	cli.VersionFlag.(*cli.BoolFlag).Category = MiscCategory
}
