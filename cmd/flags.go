package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*looseBool)(nil)

// looseBool is a pflag.Value for flags written as --flag or --flag=BOOL,
// where BOOL also accepts yes/no and y/n.
type looseBool struct {
	value *bool
}

func newLooseBool(p *bool) *looseBool {
	return &looseBool{value: p}
}

func parseLooseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q (expected true/false, 1/0, yes/no or y/n)", s)
	}
}

func (b *looseBool) Set(s string) error {
	v, err := parseLooseBool(s)
	if err != nil {
		return err
	}
	*b.value = v
	return nil
}

func (b *looseBool) String() string {
	if b.value == nil {
		return "false"
	}
	return strconv.FormatBool(*b.value)
}

func (b *looseBool) Type() string { return "bool" }

// joinSortValue rewrites "-s VALUE" and "--sort VALUE" into "--sort=VALUE"
// when VALUE is a boolean word, so both the attached and the separate form
// work while a bare --sort still means true. Arguments after "--" are left
// alone.
func joinSortValue(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if (arg == "-s" || arg == "--sort") && i+1 < len(args) {
			if _, err := parseLooseBool(args[i+1]); err == nil {
				out = append(out, "--sort="+args[i+1])
				i++
				continue
			}
		}
		out = append(out, arg)
	}
	return out
}
