package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("BOOKSHELF_LIBRARY", "")
	t.Setenv("BOOKSHELF_BACKEND", "")
	t.Setenv("BOOKSHELF_LOG_LEVEL", "")

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func (e *cliTestEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, append([]string{"--config", e.configPath}, args...), stdin)
}

func (e *cliTestEnv) listJSON(t *testing.T) []catalog.Book {
	t.Helper()
	out, _, err := e.run(t, "", "list", "--json")
	require.NoError(t, err)
	return decodeBooks(t, out)
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd, ctx := newRootCommand()
	t.Cleanup(func() { _ = ctx.close() })
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeBooks(t *testing.T, out string) []catalog.Book {
	t.Helper()
	var books []catalog.Book
	require.NoError(t, json.Unmarshal([]byte(out), &books), "output: %s", out)
	return books
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
