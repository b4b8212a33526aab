package goldentest_test

import (
	"testing"

	"github.com/sagarreddypatil/language/internal/goldentest"
)

func TestSpec8LoadsSixScenarios(t *testing.T) {
	if len(goldentest.Spec8) != 6 {
		t.Fatalf("expected 6 scenarios, got %d", len(goldentest.Spec8))
	}
	for _, sc := range goldentest.Spec8 {
		if sc.Name == "" || sc.Source == "" {
			t.Fatalf("scenario missing Name/Source: %#v", sc)
		}
	}
}

func TestParseDecodesAManifest(t *testing.T) {
	data := []byte(`
scenarios:
  - name: one
    source: "1"
    expected_kind: int
    expected_int: 1
`)
	scenarios, err := goldentest.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(scenarios) != 1 || scenarios[0].Name != "one" || scenarios[0].ExpectedInt != 1 {
		t.Fatalf("unexpected decode result: %#v", scenarios)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := goldentest.Parse([]byte("not: [valid")); err == nil {
		t.Fatalf("expected an error decoding malformed YAML")
	}
}
