package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}

	want := []string{"render", "graph", "edit", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	if got := c.Logger.GetLevel(); got != log.InfoLevel {
		t.Fatalf("initial level = %v, want info", got)
	}
	c.SetLogLevel(log.DebugLevel)
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level after SetLogLevel = %v, want debug", got)
	}
}
