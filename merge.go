package liteconf

import (
	"fmt"

	"dario.cat/mergo"
)

// MergeFile decodes another configuration file and deep-merges it over the
// current tree: mappings are descended into, everything else is overridden
// by the incoming layer. Use it to layer per-environment files over a
// shared base, e.g. config.json then config.prod.json.
//
// Environment overrides applied by [Load] can be clobbered by a later
// MergeFile; merge all file layers first, or re-derive the Config, when
// environment values must stay authoritative. Error kinds match [Load].
func (c *Config) MergeFile(path string) error {
	layer, err := decodeFile(path)
	if err != nil {
		return err
	}

	if err := mergo.Merge(&c.tree.root, layer, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging configuration layer: %w", err)
	}

	c.logger.Debug().
		Str("file", path).
		Msg("configuration layer merged")

	return nil
}
