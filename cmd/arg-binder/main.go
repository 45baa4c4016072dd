// Package main provides a small demo CLI for the arg-binder engine.
//
// It declares a sample job schema, binds the process arguments onto it with
// fuzzy key matching, dumps the bound result, and reports required-field
// diagnostics. Try:
//
//	arg-binder name=demo itterations=5 timeout=5S script=a,b,c flags=read,write
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"

	"arg-binder/bind"
	"arg-binder/schema"
)

type access int

var accessSet = &schema.EnumSet{
	Name:  "access",
	Flags: true,
	Members: []schema.EnumMember{
		{Name: "None", Value: 0},
		{Name: "Read", Value: 1},
		{Name: "Write", Value: 2},
		{Name: "Execute", Value: 4},
	},
}

type jobConfig struct {
	Name       string
	Iterations int
	Timeout    time.Duration
	Script     []string
	Flags      access
	Verbose    bool
}

func jobSchema() *schema.Schema[jobConfig] {
	b := schema.NewBuilder[jobConfig]()
	schema.String(b, "Name", func(c *jobConfig) *string { return &c.Name }, schema.Required())
	schema.Int(b, "Iterations", func(c *jobConfig) *int { return &c.Iterations }, schema.Default(1))
	schema.Duration(b, "Timeout", func(c *jobConfig) *time.Duration { return &c.Timeout },
		schema.Default(30*time.Second))
	schema.StringSlice(b, "Script", func(c *jobConfig) *[]string { return &c.Script })
	schema.Enum(b, "Flags", accessSet, func(c *jobConfig) *access { return &c.Flags })
	schema.Bool(b, "Verbose", func(c *jobConfig) *bool { return &c.Verbose })

	return b.Build()
}

func main() {
	s := jobSchema()

	cfg, err := bind.Bind(s, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "bind failed:", err)
		os.Exit(1)
	}

	spew.Dump(cfg)

	diags := bind.Validate(s, cfg)
	for _, d := range diags.Errors {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if diags.HasErrors() {
		os.Exit(2)
	}
}
