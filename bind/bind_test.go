package bind_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	Iterations int
	Timeout    time.Duration
	Script     []string
	Flags      access
	Ratio      float64
	Verbose    bool
	Name       string
}

func jobSchema(t *testing.T) *schema.Schema[jobConfig] {
	t.Helper()

	b := schema.NewBuilder[jobConfig]()
	schema.Int(b, "Iterations", func(c *jobConfig) *int { return &c.Iterations })
	schema.Duration(b, "Timeout", func(c *jobConfig) *time.Duration { return &c.Timeout })
	schema.StringSlice(b, "Script", func(c *jobConfig) *[]string { return &c.Script })
	schema.Enum(b, "Flags", accessSet, func(c *jobConfig) *access { return &c.Flags })
	schema.FloatField(b, "Ratio", func(c *jobConfig) *float64 { return &c.Ratio })
	schema.Bool(b, "Verbose", func(c *jobConfig) *bool { return &c.Verbose })
	schema.String(b, "Name", func(c *jobConfig) *string { return &c.Name }, schema.Required())

	return b.Build()
}

func TestBindExactKeys(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	cfg, err := bind.Bind(s, []string{
		"iterations=5",
		"timeout=5S",
		"script=a,b,c",
		"flags=Read,Write",
		"ratio=0.75",
		"verbose=true",
		"name=demo",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Iterations)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Script)
	assert.Equal(t, access(3), cfg.Flags)
	assert.Equal(t, 0.75, cfg.Ratio)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "demo", cfg.Name)
}

func TestBindFuzzyKeyWithinCeiling(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	cfg, err := bind.Bind(s, []string{"itterations=5"})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Iterations)
}

func TestBindFuzzyKeyRejectedAtCeilingZero(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	cfg, err := bind.Bind(s, []string{"itterations=5"}, bind.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Zero(t, cfg.Iterations)

	// Exact keys still bind, case-insensitively.
	cfg, err = bind.Bind(s, []string{"ITERATIONS=7"}, bind.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Iterations)
}

func TestBindMalformedTokensAreIgnored(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	cfg, err := bind.Bind(s, []string{
		"iterations",      // no delimiter
		"=5",              // no key
		"iterations=",     // no value
		"name=a=b",        // three fragments
		"",                // empty token
	})
	require.NoError(t, err)

	assert.Zero(t, cfg.Iterations)
	assert.Empty(t, cfg.Name)
}

func TestBindUnresolvedKeyIsIgnored(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	cfg, err := bind.Bind(s, []string{"completelydifferent=5"})
	require.NoError(t, err)
	assert.Equal(t, jobConfig{}, *cfg)
}

func TestBindFailSoftConversionLeavesFieldUnchanged(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	// An unknown enum member is a silent skip, not an error.
	cfg, err := bind.Bind(s, []string{"flags=Bogus"})
	require.NoError(t, err)
	assert.Zero(t, cfg.Flags)
}

func TestBindScalarErrorIsFatalButKeepsEarlierFields(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	cfg, err := bind.Bind(s, []string{"name=demo", "iterations=five"})
	require.Error(t, err)

	// No rollback: the field bound before the failure stays set.
	assert.Equal(t, "demo", cfg.Name)
	assert.Zero(t, cfg.Iterations)
}

func TestBindLaterTokenOverwritesEarlier(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	cfg, err := bind.Bind(s, []string{"iterations=1", "iterations=2"})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Iterations)
}

func TestBindAppliesDeclaredDefaults(t *testing.T) {
	t.Parallel()

	type cfg struct{ Timeout time.Duration }

	b := schema.NewBuilder[cfg]()
	schema.Duration(b, "Timeout", func(c *cfg) *time.Duration { return &c.Timeout },
		schema.Default(30*time.Second))
	s := b.Build()

	out, err := bind.Bind(s, nil)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, out.Timeout)

	out, err = bind.Bind(s, []string{"timeout=5S"})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, out.Timeout)
}

func TestValidateRequiredFields(t *testing.T) {
	t.Parallel()

	s := jobSchema(t)

	cfg, err := bind.Bind(s, []string{"iterations=5"})
	require.NoError(t, err)

	diags := bind.Validate(s, cfg)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "Name", diags.Errors[0].Field)
	assert.Equal(t, "required_field", diags.Errors[0].Code)
	assert.False(t, bind.Valid(s, cfg))

	cfg, err = bind.Bind(s, []string{"name=demo"})
	require.NoError(t, err)
	assert.True(t, bind.Valid(s, cfg))
}

func TestBindFixedCollectionKeepsSplitLength(t *testing.T) {
	t.Parallel()

	type cfg struct{ Ports []int }

	b := schema.NewBuilder[cfg]()
	schema.IntArray(b, "Ports", func(c *cfg) *[]int { return &c.Ports })
	s := b.Build()

	out, err := bind.Bind(s, []string{"ports=80,x,443"})
	require.NoError(t, err)
	assert.Equal(t, []int{80, 0, 443}, out.Ports)
}
