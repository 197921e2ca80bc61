// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.ini")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runWith(t *testing.T, p params) (string, error) {
	t.Helper()
	flags = p
	t.Cleanup(func() { flags = params{FD: -1} })
	out := new(strings.Builder)
	rootCmd.SetOut(out)
	err := run(rootCmd, nil)
	return out.String(), err
}

func TestRunProjectsFile(t *testing.T) {
	path := writeInput(t, "[sec1]\nfoo = bar\n")
	got, err := runWith(t, params{Array: "conf", Input: path, FD: -1})
	if err != nil {
		t.Fatalf("run(...): %v", err)
	}
	want := "declare -A conf\n" +
		"conf['sec1']=true\n" +
		"declare -A conf_sec1\n" +
		"conf_sec1['foo']='bar'\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("script (-want +got):\n%s", diff)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		p    params
	}{
		{name: "NoArrayName", p: params{FD: -1}},
		{name: "IllegalArrayName", p: params{Array: "9conf", FD: -1}},
		{name: "NegativeFD", p: params{Array: "conf", FD: -7}},
		{name: "FileAndFD", p: params{Array: "conf", Input: "x.ini", FD: 3}},
		{name: "MissingFile", p: params{Array: "conf", Input: "no/such/file.ini", FD: -1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := runWith(t, test.p); err == nil {
				t.Error("run(...) succeeded; want error")
			}
		})
	}
}

func TestRunLeavesStdinOpen(t *testing.T) {
	path := writeInput(t, "[sec]\nk = v\n")
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	orig := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = orig })

	if _, err := runWith(t, params{Array: "conf", FD: -1}); err != nil {
		t.Fatalf("run(...): %v", err)
	}
	if _, err := f.Stat(); err != nil {
		t.Errorf("stdin was closed: %v", err)
	}
}
