// Package goldentest loads the literal scenario fixtures of spec §8 from
// the YAML manifest in testdata/, shared by the evaluator and
// lowering/shrink test suites so both oracles are checked against the
// same inputs. Grounded on the teacher's yaml.v3 usage
// (internal/evaluator/builtins_yaml.go) for decode conventions, adapted
// here from runtime YAML data decoding to static test-fixture loading.
package goldentest

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

// Scenario is one literal-input/expected-output case of spec §8.
type Scenario struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`

	// ExpectedKind is "int" or "bool"; ExpectedInt/ExpectedBool holds the
	// literal the interpreter and a shrunken CPS Halt must both agree on.
	ExpectedKind string `yaml:"expected_kind"`
	ExpectedInt  int64  `yaml:"expected_int"`
	ExpectedBool bool   `yaml:"expected_bool"`
}

// Manifest is the top-level shape of a testdata/*.yaml fixture file.
type Manifest struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Parse decodes a YAML manifest's bytes into its Scenario list.
func Parse(data []byte) ([]Scenario, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m.Scenarios, nil
}

//go:embed testdata/spec8.yaml
var spec8YAML []byte

// Spec8 is spec §8's six literal scenarios, decoded via Parse from
// testdata/spec8.yaml and embedded at build time so package tests don't
// need a working directory relative to testdata/ to find it.
var Spec8 = mustParseSpec8()

func mustParseSpec8() []Scenario {
	scenarios, err := Parse(spec8YAML)
	if err != nil {
		panic(err)
	}
	return scenarios
}
