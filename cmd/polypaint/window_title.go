package main

import (
	"fmt"
	"strings"

	"github.com/example/polypaint/internal/appstate"
)

type titleOptions struct {
	Mode   string
	Detail string
	Extras []string
}

func windowTitle(opts titleOptions) string {
	parts := []string{appstate.ProgramTitle}

	if mode := strings.TrimSpace(opts.Mode); mode != "" {
		parts = append(parts, mode)
	}
	if detail := strings.TrimSpace(opts.Detail); detail != "" {
		parts = append(parts, detail)
	}

	extras := make([]string, 0, len(opts.Extras)+2)
	if v := strings.TrimSpace(version); v != "" {
		extras = append(extras, fmt.Sprintf("v%s", v))
	}
	if c := strings.TrimSpace(commit); c != "" {
		extras = append(extras, fmt.Sprintf("commit %s", c))
	}
	extras = append(extras, opts.Extras...)

	return strings.Join(append(parts, extras...), " - ")
}
