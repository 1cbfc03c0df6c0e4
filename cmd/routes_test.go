package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bnei-Baruch/udpserial-panel/pkg/router"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	routesFile, linkActiveClass = "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)

	assert.Contains(t, out, "-> /statistics")
	assert.Contains(t, out, "/configuration/edit/:name")
	assert.Contains(t, out, "EditPort")
	assert.Contains(t, out, "link active class: uk-active")
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "/configuration/edit/eth0")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"path": "/configuration/edit/eth0",
		"params": {"name": "eth0"},
		"view": "EditPort",
		"name": "Edit port",
		"linkActiveClass": "uk-active"
	}`, out)

	_, err = run(t, "resolve", "/nope")
	assert.True(t, errors.Is(err, router.ErrNotFound))
}

func TestResolveCommandWithRoutesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(file, []byte("linkActiveClass: active\nroutes:\n  - path: /\n    redirect: /diagnostic\n  - path: /diagnostic\n    view: Diagnostic\n"), 0o644))

	out, err := run(t, "resolve", "--routes", file, "/")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"path": "/diagnostic",
		"redirectedFrom": "/",
		"params": {},
		"view": "Diagnostic",
		"linkActiveClass": "active"
	}`, out)
}
