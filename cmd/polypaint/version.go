package main

import (
	"flag"
	"fmt"
	"strings"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Program() string        { return v.r.program + " version" }
func (v *versionCmd) FlagSet() *flag.FlagSet { return nil }

func (v *versionCmd) Run() error {
	fmt.Println(versionString(v.r.program))
	return nil
}

func versionString(program string) string {
	s := fmt.Sprintf("%s version %s", program, version)
	var extra []string
	if c := strings.TrimSpace(commit); c != "" {
		extra = append(extra, "commit "+c)
	}
	if d := strings.TrimSpace(date); d != "" {
		extra = append(extra, "built "+d)
	}
	if len(extra) > 0 {
		s += " (" + strings.Join(extra, ", ") + ")"
	}
	return s
}
