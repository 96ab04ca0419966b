package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

// tempoFlags are the drill flags whose value is optional on the command line
var tempoFlags = []string{"--auto", "--preset"}

// Tempo is a flag value holding beats per minute. Set tells an explicit
// value apart from a flag that was never given.
type Tempo struct {
	BPM int
	Set bool
}

// Decode implements kong.MapperValue
func (t *Tempo) Decode(ctx *kong.DecodeContext) error {
	var value string
	if err := ctx.Scan.PopValueInto("tempo", &value); err != nil {
		return err
	}

	bpm, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("expected a tempo in beats per minute but got %q", value)
	}

	t.BPM = bpm
	t.Set = true
	return nil
}

// NormalizeArgs rewrites the optional-value tempo flags into the
// --flag=value form kong expects. A bare --auto or --preset, or one followed
// by something that is not a number, gets defaultBPM; "--auto 120" becomes
// "--auto=120". Arguments after "--" are left alone.
func NormalizeArgs(args []string, defaultBPM int) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		if !slices.Contains(tempoFlags, arg) {
			out = append(out, arg)
			continue
		}

		if i+1 < len(args) {
			if _, err := strconv.Atoi(args[i+1]); err == nil {
				out = append(out, arg+"="+args[i+1])
				i++
				continue
			}
		}
		out = append(out, fmt.Sprintf("%s=%d", arg, defaultBPM))
	}

	return out
}
