package main

import (
	"testing"
	"time"
)

func TestCommandFlagsAreIndependent(t *testing.T) {
	root := newRootCmd()
	live, _, err := root.Find([]string{"live"})
	if err != nil {
		t.Fatal(err)
	}
	serve, _, err := root.Find([]string{"serve"})
	if err != nil {
		t.Fatal(err)
	}

	if err := live.ParseFlags([]string{"--for", "3s"}); err != nil {
		t.Fatal(err)
	}
	got, err := serve.Flags().GetDuration("for")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("serve --for = %v after setting live --for, want 0", got)
	}
	if d, _ := live.Flags().GetDuration("for"); d != 3*time.Second {
		t.Errorf("live --for = %v, want 3s", d)
	}

	sweep, _, _ := root.Find([]string{"sweep"})
	analyze, _, _ := root.Find([]string{"analyze"})
	if d, _ := sweep.Flags().GetFloat64("time"); d != 1 {
		t.Errorf("sweep --time default = %v, want 1", d)
	}
	if d, _ := analyze.Flags().GetFloat64("time"); d != 10 {
		t.Errorf("analyze --time default = %v, want 10", d)
	}
}
