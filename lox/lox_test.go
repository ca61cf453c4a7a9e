package lox

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/golox/interpreter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gopkg.in/yaml.v3"
)

// testProgram is a golden test case from testdata.
type testProgram struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Output string   `yaml:"output"`
	Errors []string `yaml:"errors"`
	Exit   int      `yaml:"exit"`
}

func loadPrograms(t *testing.T, filename string) []testProgram {
	t.Helper()
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	var programs []testProgram
	if err = yaml.Unmarshal(data, &programs); err != nil {
		t.Fatalf("cannot decode %s: %v", filename, err)
	}
	return programs
}

func TestPrograms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.lox")
	defer teardown()
	//
	for _, p := range loadPrograms(t, "testdata/programs.yaml") {
		t.Run(p.Name, func(t *testing.T) {
			var out bytes.Buffer
			var reported []string
			intp := interpreter.New(interpreter.Output(&out))
			intp.SetErrorHandler(func(e error) {
				reported = append(reported, e.Error())
			})
			err := Run(p.Source, intp)
			if code := ExitCode(err); code != p.Exit {
				t.Errorf("expected exit code %d, got %d (%v)", p.Exit, code, err)
			}
			if diff := cmp.Diff(p.Output, out.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(p.Errors, reported); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStaticErrorsStopExecution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "golox.lox")
	defer teardown()
	//
	var out bytes.Buffer
	intp := interpreter.New(interpreter.Output(&out))
	intp.SetErrorHandler(func(error) {})
	if err := Run("print 1;\nprint ;", intp); ExitCode(err) != ExitStatic {
		t.Errorf("expected static error, got %v", err)
	}
	if out.Len() > 0 {
		t.Errorf("nothing should be executed after a syntax error, got %q", out.String())
	}
}
