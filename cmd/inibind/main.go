// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// inibind reads an INI config and prints Bash declare statements that
// materialize it as a set of associative arrays.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourbase/inibind/envvar"
	"github.com/yourbase/inibind/ini"
	"github.com/yourbase/inibind/shell"
	"zombiezen.com/go/log"
)

type params struct {
	Array  string // TOC array name; sections land in <Array>_<section>
	Input  string // input file path; empty means stdin or --fd
	FD     int    // input file descriptor; negative means unset
	Global bool   // request global arrays (declare -gA)
}

var flags params

var rootCmd = &cobra.Command{
	Use:   "inibind -a ARRAY [-u FD | -i FILE] [-g]",
	Short: "Project an INI config into Bash associative arrays",
	Long: `Reads an INI config from stdin and prints Bash declare statements
that materialize it as a set of associative arrays, suitable for eval.

The sections of the INI config are added to an associative array specified
by the -a ARRAY argument. The keys and values of each section are then
added to an associative array named after the ARRAY and the section,
<ARRAY>_<SECTION>. Every derived array name must be a valid Bash variable
name, otherwise an error is returned.

Example:

  Input input.ini:
    [sec1]
    foo = bar

    [sec2]
    biz = baz

  Result:
    $ eval "$(inibind -a conf < input.ini)"
    $ declare -p conf
    declare -A conf=([sec1]="true" [sec2]="true" )
    $ declare -p conf_sec1
    declare -A conf_sec1=([foo]="bar" )

If -u FD is passed the INI config is read from the FD file descriptor, and
if -i FILE is passed it is read from FILE. The printed declare statements
create arrays with local scope when evaluated inside a function unless -g
is specified.`,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.Array, "array", "a", envvar.Get("INIBIND_ARRAY", ""), "name of the table-of-contents array")
	rootCmd.Flags().StringVarP(&flags.Input, "input", "i", "", "read the INI config from a file instead of stdin")
	rootCmd.Flags().IntVarP(&flags.FD, "fd", "u", envvar.Int("INIBIND_FD", -1), "read the INI config from a file descriptor instead of stdin")
	rootCmd.Flags().BoolVarP(&flags.Global, "global", "g", envvar.Bool("INIBIND_GLOBAL"), "create arrays with global scope")
}

func run(cmd *cobra.Command, args []string) error {
	if flags.Array == "" {
		return errors.New("no array name; pass -a ARRAY")
	}
	if !shell.LegalIdentifier(flags.Array) {
		return fmt.Errorf("%s: invalid array name", flags.Array)
	}
	if flags.FD < -1 {
		return fmt.Errorf("%d: invalid file descriptor specification", flags.FD)
	}
	in, err := openInput()
	if err != nil {
		return err
	}
	if in != os.Stdin {
		// The process does not own stdin's lifetime.
		defer in.Close()
	}

	scope := ini.Local
	if flags.Global {
		scope = ini.Global
	}
	sink := shell.NewSink(cmd.OutOrStdout(), flags.Array, scope)
	return ini.Project(in, sink, flags.Array, scope)
}

// openInput picks the input stream: an explicit file, an inherited file
// descriptor, or stdin. The caller closes it.
func openInput() (*os.File, error) {
	if flags.Input != "" && flags.FD >= 0 {
		return nil, errors.New("pass at most one of -i and -u")
	}
	switch {
	case flags.Input != "":
		if _, err := os.Lstat(flags.Input); err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return os.Open(flags.Input)
	case flags.FD >= 0:
		f := os.NewFile(uintptr(flags.FD), fmt.Sprintf("/dev/fd/%d", flags.FD))
		if f == nil {
			return nil, fmt.Errorf("%d: invalid file descriptor specification", flags.FD)
		}
		return f, nil
	default:
		return os.Stdin, nil
	}
}

func main() {
	ctx := context.Background()
	if err := rootCmd.Execute(); err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}
