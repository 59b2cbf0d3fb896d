package main

// Options mirrors the CLI surface: positional inputs plus short flags.
type Options struct {
	HashString bool     `short:"s" description:"Hash each argument as a string, even when a file with that name exists"`
	Version    bool     `short:"v" description:"Show version and exit"`
	Checksums  bool     `short:"c" description:"Calculate CRC checksums as well"`
	Includes   []string `short:"f" value-name:"TEXT" description:"Select a family of algorithms: only use algorithms having TEXT in their names (repeatable)"`
	Excludes   []string `short:"x" value-name:"TEXT" description:"Exclude a family of algorithms: skip algorithms having TEXT in their names (repeatable)"`
	Match      string   `short:"m" value-name:"TEXT" description:"Only report digests containing TEXT"`
	JSON       bool     `short:"j" description:"Output results in JSON format"`

	Args struct {
		HashMes []string `positional-arg-name:"HASHME"`
	} `positional-args:"yes"`
}
