package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd fps --show", []string{"fps", "--show"}, true},
		{"teleport 1 2 3", []string{"teleport", "1", "2", "3"}, true},
		{"  cmd  ", nil, false},
		{"", nil, false},
	}
	for _, c := range cases {
		args, ok := Parse(c.line)
		assert.Equal(t, c.ok, ok, c.line)
		assert.Equal(t, c.args, args, c.line)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("fps", flag.ContinueOnError)
	show := fs.Bool("show", false, "")
	var gotArgs []string
	r.Register("fps", "fps --show|--hide", fs, func(args []string) error {
		gotArgs = args
		return nil
	})
	boom := errors.New("boom")
	r.Register("fail", "fail", nil, func([]string) error { return boom })

	require.NoError(t, r.Execute([]string{"fps", "--show", "extra"}))
	assert.True(t, *show)
	assert.Equal(t, []string{"extra"}, gotArgs)

	assert.ErrorIs(t, r.Execute([]string{"fail"}), boom)
	assert.EqualError(t, r.Execute([]string{"nope"}), "unknown command: nope")
	assert.Error(t, r.Execute(nil))
	assert.Error(t, r.Execute([]string{"fps", "--bogus"}))

	assert.Equal(t, []string{"fail", "fps"}, r.Names())
	assert.Equal(t, "fps --show|--hide", r.Usage("fps"))
	assert.Empty(t, r.Usage("nope"))
}
