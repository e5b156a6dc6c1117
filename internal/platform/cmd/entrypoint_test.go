package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Rounds int    `env:"CMD_TEST_ROUNDS" envDefault:"1"`
	Mode   string `env:"CMD_TEST_MODE" envDefault:"play"`
}

func bindTestConfig(fs *flag.FlagSet, cfg *testConfig) {
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "rounds")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("FAIRRPS_CMD_TEST_ROUNDS", "4")
	t.Setenv("FAIRRPS_CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	bindTestConfig(fs, &cfgRef)

	if err := ParseArgs(fs, []string{"-rounds", "7"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Rounds != 7 {
		t.Fatalf("expected flag value for rounds, got %d", cfgRef.Rounds)
	}
	if cfgRef.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigFromArgsKeepsPositionals(t *testing.T) {
	t.Setenv("FAIRRPS_CMD_TEST_MODE", "configarg-mode")

	cfgRef := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfgRef, fs, []string{"-rounds", "2", "rock", "paper", "scissors"}, bindTestConfig); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfgRef.Rounds != 2 {
		t.Fatalf("expected parsed flag rounds, got %d", cfgRef.Rounds)
	}
	if cfgRef.Mode != "configarg-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
	if got := fs.Args(); len(got) != 3 || got[0] != "rock" {
		t.Fatalf("expected positional moves, got %v", got)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target to be rejected")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceGame, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("FAIRRPS_OTEL_ENDPOINT", "")
	want := errors.New("round failed")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceGame, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run function to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
