// Package flagx implements extensions to pflag.
package flagx

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// LevelP defines a slog level flag with the given default.
func LevelP(fs *pflag.FlagSet, name, shorthand string, value slog.Level, usage string) *slog.LevelVar {
	level := new(slog.LevelVar)
	def := new(slog.LevelVar)
	def.Set(value)
	fs.TextVarP(level, name, shorthand, def, usage)
	return level
}

// ParseEnv sets flags from environment entries of the form
// PREFIX_FLAG_NAME=value, mapping FLAG_NAME to --flag-name. Unknown names are
// reported to the flag set's output and skipped.
func ParseEnv(fs *pflag.FlagSet, prefix string, environ []string) error {
	for _, env := range environ {
		k, v, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		s, ok := strings.CutPrefix(k, prefix)
		if !ok {
			continue
		}
		n := strings.Map(func(r rune) rune {
			if r == '_' {
				return '-'
			}
			return unicode.ToLower(r)
		}, s)
		if fs.Lookup(n) == nil {
			fmt.Fprintf(fs.Output(), "env %s: unknown flag --%s\n", k, n)
			continue
		}
		if err := fs.Set(n, v); err != nil {
			return errors.Wrapf(err, "env %s: flag --%s", k, n)
		}
	}
	return nil
}
