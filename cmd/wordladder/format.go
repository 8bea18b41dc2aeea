package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown output format (known: debug, json, yaml)")

// Format selects how a ladder is printed.
type Format string

const (
	FormatDebug Format = "debug"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// The following is necessary for Cobra to parse the format flag.
var _ pflag.Value = (*Format)(nil)

func (f Format) String() string {
	return string(f)
}

func (f *Format) Set(s string) error {
	switch Format(strings.ToLower(s)) {
	case FormatDebug:
		*f = FormatDebug
	case FormatJSON:
		*f = FormatJSON
	case FormatYAML:
		*f = FormatYAML
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return nil
}

func (f *Format) Type() string {
	return "Format"
}

// writeLadder prints words to w in format f. An empty ladder prints as an empty list.
func writeLadder(w io.Writer, f Format, words []string) error {
	if words == nil {
		words = []string{}
	}
	switch f {
	case FormatDebug:
		quoted := make([]string, len(words))
		for i, s := range words {
			quoted[i] = strconv.Quote(s)
		}
		_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(quoted, ", "))
		return err
	case FormatJSON:
		return json.NewEncoder(w).Encode(words)
	case FormatYAML:
		out, err := yaml.Marshal(words)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
