package config

import "fmt"

// Validate checks that the configuration has everything a run needs
// before the pipeline is started.
func (c *Config) Validate() error {
	if c.DumpURL == "" {
		return fmt.Errorf("dump_url is required")
	}
	if c.LangTablePath == "" {
		return fmt.Errorf("lang_table_path is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
