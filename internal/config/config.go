// Package config loads pipemaze settings from a CUE file.
//
// The file is unified with the embedded #Config schema, which supplies
// defaults and rejects unknown fields or out-of-range values. Flags set on
// the command line take precedence over file values; that merge happens in
// the cli package.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaSource string

// Config holds resolved settings.
type Config struct {
	Database string `json:"database,omitempty"`
	Format   string `json:"format"`
	Verbose  bool   `json:"verbose"`
	Charset  string `json:"charset"`
	Cache    bool   `json:"cache"`
	Workers  int    `json:"workers"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Format:  "text",
		Charset: "unicode",
		Cache:   true,
		Workers: 4,
	}
}

// Error reports an invalid config file.
type Error struct {
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// Load reads and validates the CUE config file at path.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, src)
}

// Parse validates CUE source against the schema. filename is used in
// error positions only.
func Parse(filename string, src []byte) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return Config{}, formatCUEError(err)
	}

	v := def.Unify(data)
	if err := v.Validate(); err != nil {
		return Config{}, formatCUEError(err)
	}

	return decode(v)
}

func decode(v cue.Value) (Config, error) {
	var cfg Config
	var err error

	if f := v.LookupPath(cue.ParsePath("database")); f.Exists() && f.IsConcrete() {
		if cfg.Database, err = f.String(); err != nil {
			return Config{}, formatCUEError(err)
		}
	}
	if cfg.Format, err = field(v, "format").String(); err != nil {
		return Config{}, formatCUEError(err)
	}
	if cfg.Verbose, err = field(v, "verbose").Bool(); err != nil {
		return Config{}, formatCUEError(err)
	}
	if cfg.Charset, err = field(v, "charset").String(); err != nil {
		return Config{}, formatCUEError(err)
	}
	if cfg.Cache, err = field(v, "cache").Bool(); err != nil {
		return Config{}, formatCUEError(err)
	}
	workers, err := field(v, "workers").Int64()
	if err != nil {
		return Config{}, formatCUEError(err)
	}
	cfg.Workers = int(workers)

	return cfg, nil
}

// field looks up name and resolves a default when one applies.
func field(v cue.Value, name string) cue.Value {
	f := v.LookupPath(cue.ParsePath(name))
	if d, ok := f.Default(); ok {
		return d
	}
	return f
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &Error{Message: err.Error()}
	}
	first := errs[0]
	cfgErr := &Error{Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		cfgErr.Pos = positions[0]
	}
	return cfgErr
}
