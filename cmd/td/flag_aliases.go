package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// registerFlagAliases lets --desc stand in for --description on the
// given commands. The alias is rewritten inside the flag set's
// normalize hook, so it stays out of the usage output.
func registerFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		flags := cmd.Flags()
		chain := flags.GetNormalizeFunc()
		flags.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
			if name == "desc" {
				name = "description"
			}
			return chain(fs, name)
		})
	}
}
