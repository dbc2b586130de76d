/*
Package config loads richtypo project configuration.

	            +-------------+
	            |   Config    |
	            |  (locale,   |
	            |   rules)    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Selects a locale and the rules or groups to run
- Overrides locale params (quote glyphs, separators)
- Adds project specific rules
- Lists the files to format and where to write them

🔄 Flow:
1. Find locates a config file in a directory
2. LoadConfig picks a parser by extension (.richtypo tries YAML, then HCL)
3. Validate fills in defaults and checks locale, rule names and globs
4. Pipeline builds the typo.Pipeline the config describes

🔍 Example:

	cfg, err := config.LoadConfig(ctx, ".richtypo.yaml")
	if err != nil {
		return err
	}
	p, err := cfg.Pipeline(ctx)
	if err != nil {
		return err
	}
	out := p.Run(ctx, html)
*/
package config
