// Package puzzlecfg loads a generator.Config from a YAML file, applying
// the documented defaults for any key the file omits.
package puzzlecfg
