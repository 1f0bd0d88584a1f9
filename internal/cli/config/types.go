// Package config provides configuration management for the etymodb CLI:
// a koanf-based defaults -> file -> env -> flags precedence chain (spec.md
// §6), trimmed from the teacher's multi-environment/DB-target machinery
// since this tool has no project directory or deploy-target concept.
package config

// Config holds all CLI configuration options.
type Config struct {
	DumpURL       string `koanf:"dump_url"`
	DownloadPath  string `koanf:"download_path"`
	LangTablePath string `koanf:"lang_table_path"`
	OutputPath    string `koanf:"output_path"`
	Workers       int    `koanf:"workers"`
	Verbose       bool   `koanf:"verbose"`
}

// Default configuration values (spec.md §6 "MUST default to the documented
// paths for compatibility").
const (
	DefaultDumpURL       = "https://dumps.wikimedia.your.org/enwiktionary/latest/enwiktionary-latest-pages-articles.xml.bz2"
	DefaultDownloadPath  = "/tmp/enwiktionary-latest-pages-articles.xml.bz2"
	DefaultLangTablePath = "langcodes.csv"
	DefaultOutputPath    = "./etymology.csv"
	DefaultWorkers       = 4
)
