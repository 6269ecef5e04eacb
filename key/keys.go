// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

const (
	DefaultProvider   = "providers.default"
	FetchDefaultLimit = "fetch.default_limit"
	CatalogPath       = "catalog.path"
	LogsWrite         = "logs.write"
	LogsLevel         = "logs.level"
	LogsJson          = "logs.json"
	CliColored        = "cli.colored"
	CliVersionCheck   = "cli.version_check"
)
