package config

const (
	defaultCSVName            = "manifest.csv"
	defaultJSONName           = "manifest.json"
	defaultSummaryEntryLimit  = 5
	defaultSummaryIDWidth     = 15
	defaultSummaryTopPrefixes = 10
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// Default returns a Config populated with repository defaults. The
// defaults describe the complete fixed behavior of the tool; a missing or
// empty config file changes nothing.
func Default() Config {
	return Config{
		Output: Output{
			CSVName:  defaultCSVName,
			JSONName: defaultJSONName,
		},
		Scan: Scan{
			MatchUppercaseExtensions: false,
		},
		Summary: Summary{
			EntryLimit:  defaultSummaryEntryLimit,
			IDWidth:     defaultSummaryIDWidth,
			TopPrefixes: defaultSummaryTopPrefixes,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
