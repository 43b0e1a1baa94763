package config

// Level tags.
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogWarnColor  = "\033[33m"
	LogColorReset = "\033[0m"
)

// Component prefixes. APP is green, GAME-SERVICE cyan, GRPC purple and
// REST blue.
const (
	ColorGreen  = "\033[32m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorReset  = "\033[0m"
)
