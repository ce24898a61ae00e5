package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const sampleYAML = `
logging:
  level: debug
  console: true
keyboards:
  - name: main
    kind: inline
    auto_commit: true
    rows:
      - [Hello, Test]
      - ["42", World]
    pending: [Late]
`

const sampleJSON = `{
  "logging": {"level": "debug", "console": true},
  "keyboards": [
    {"name": "main", "kind": "inline", "auto_commit": true,
     "rows": [["Hello", "Test"], ["42", "World"]], "pending": ["Late"]}
  ]
}`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestYAMLAndJSONDecodeTheSame(t *testing.T) {
	dir := t.TempDir()
	y, err := NewManager(writeFile(t, dir, "kb.yaml", sampleYAML)).Load(context.Background())
	if err != nil {
		t.Fatalf("yaml Load: %v", err)
	}
	j, err := NewManager(writeFile(t, dir, "kb.json", sampleJSON)).Load(context.Background())
	if err != nil {
		t.Fatalf("json Load: %v", err)
	}
	if !reflect.DeepEqual(y, j) {
		t.Fatalf("yaml and json differ:\n%+v\n%+v", y, j)
	}
	if got := y.Keyboards[0].Rows[1][0]; got != "42" {
		t.Fatalf("quoted numeric label = %q", got)
	}
}

func TestDecodeRejectsUnknownFieldsAndTrailingData(t *testing.T) {
	if _, err := Decode("kb.json", []byte(`{"keyboards": [], "colour": "red"}`)); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := Decode("kb.yml", []byte("keyboards: []\nextra: 1\n")); err == nil {
		t.Fatalf("expected unknown field error for yaml")
	}
	if _, err := Decode("kb.json", []byte(`{"keyboards": []} {}`)); err == nil || !strings.Contains(err.Error(), "trailing") {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Watch: WatchConfig{Debounce: "soon"},
		Keyboards: []KeyboardConfig{
			{Name: "a", Kind: "inline", Rows: [][]string{{"ok", " "}}},
			{Name: "a", Kind: "grid"},
			{Name: "", Kind: "reply", Pending: []string{""}},
		},
	}
	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{
		"keyboards[0].rows[0][1]: empty label",
		`keyboards[1].name: "a" already used by keyboards[0]`,
		`keyboards[1].kind: "grid"`,
		"keyboards[2].name: must not be empty",
		"keyboards[2].pending[0]: empty label",
		"watch.debounce: invalid duration",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in:\n%v", want, err)
		}
	}

	if err := Validate(Default()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if err := Validate(nil); err == nil {
		t.Fatalf("nil config should fail")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	p := writeFile(t, t.TempDir(), "kb.json", `{"keyboards": [{"name": "x", "kind": "nope", "rows": []}]}`)
	m := NewManager(p)
	if _, err := m.Load(context.Background()); err == nil {
		t.Fatalf("expected Load to fail")
	}
	if m.Get() != nil {
		t.Fatalf("invalid config was committed")
	}

	m.SetValidator(nil)
	if _, err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load without validator: %v", err)
	}
}

func TestReloadPublishesOnlyChanges(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "kb.yaml", sampleYAML)
	m := NewManager(p)
	if _, err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	ch := m.Subscribe(1)
	defer m.Unsubscribe(ch)

	if m.reload(context.Background()) {
		t.Fatalf("unchanged file should not publish")
	}

	writeFile(t, dir, "kb.yaml", strings.Replace(sampleYAML, "Hello", "Hi", 1))
	if !m.reload(context.Background()) {
		t.Fatalf("changed file should publish")
	}
	select {
	case cfg := <-ch:
		if cfg.Keyboards[0].Rows[0][0] != "Hi" {
			t.Fatalf("published stale config: %+v", cfg.Keyboards[0])
		}
	case <-time.After(time.Second):
		t.Fatalf("no config published")
	}

	writeFile(t, dir, "kb.yaml", "keyboards: [{name: x, kind: bad, rows: []}]\n")
	if m.reload(context.Background()) {
		t.Fatalf("invalid config should not publish")
	}
	if m.Get().Keyboards[0].Name != "main" {
		t.Fatalf("invalid config replaced the committed one")
	}
}

func TestPublishKeepsLatest(t *testing.T) {
	m := NewManager("unused.json")
	ch := m.Subscribe(1)
	first, second := &Config{}, &Config{}
	m.publish(first)
	m.publish(second)
	if got := <-ch; got != second {
		t.Fatalf("slow subscriber should receive the latest config")
	}

	m.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatalf("channel should be closed after Unsubscribe")
	}
	m.publish(first) // no subscribers, must not panic
}

func TestSummarizeConfigChange(t *testing.T) {
	oldCfg := Default()
	newCfg := Default()
	newCfg.Logging.Level = "debug"
	newCfg.Keyboards[1].Rows[0][0] = "Hi"
	newCfg.Keyboards = append(newCfg.Keyboards[1:], KeyboardConfig{Name: "extra", Kind: KindReply})

	changed, attrs, kbs := SummarizeConfigChange(oldCfg, newCfg)
	if !reflect.DeepEqual(changed, []string{"logging", "keyboards"}) {
		t.Fatalf("changed = %v", changed)
	}
	if len(attrs) == 0 {
		t.Fatalf("expected log attrs")
	}
	if !reflect.DeepEqual(kbs, []string{"inline", "extra", "default"}) {
		t.Fatalf("keyboards changed = %v", kbs)
	}

	changed, _, kbs = SummarizeConfigChange(Default(), Default())
	if len(changed) != 0 || len(kbs) != 0 {
		t.Fatalf("identical configs reported changes: %v %v", changed, kbs)
	}
}

func TestDurations(t *testing.T) {
	if d := DebounceOf(nil); d != DefaultDebounce {
		t.Fatalf("DebounceOf(nil) = %v", d)
	}
	if d := DebounceOf(&Config{Watch: WatchConfig{Debounce: "1s"}}); d != time.Second {
		t.Fatalf("DebounceOf(1s) = %v", d)
	}
	if _, err := ParseDurationField("x", "-1s"); err == nil {
		t.Fatalf("negative duration accepted")
	}
}

func TestYAMLRejectsUnquotedLabels(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{"keyboards: [{name: a, kind: reply, rows: [[ok, 42]]}]\n", "keyboards[0].rows[0][1]: label 42 must be a string"},
		{"keyboards:\n  - {name: a, kind: reply, rows: []}\n  - {name: b, kind: inline, rows: [], pending: [true]}\n", "keyboards[1].pending[0]: label true must be a string"},
		{"keyboards: [{name: a, kind: reply, rows: [[~]]}]\n", "keyboards[0].rows[0][0]: empty label"},
	}
	for _, tc := range cases {
		_, err := Decode("kb.yaml", []byte(tc.body))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("Decode(%q) err = %v, want %q", tc.body, err, tc.want)
		}
	}
	if _, err := Decode("kb.yaml", []byte("keyboards: [{name: a, kind: reply, rows: [[\"42\"]]}]\n")); err != nil {
		t.Fatalf("quoted numeric label rejected: %v", err)
	}
}
