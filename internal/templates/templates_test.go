package templates

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExecute_ConfigTemplate(t *testing.T) {
	var buf bytes.Buffer
	data := struct {
		ProjectName string
		Rows        int
		Cols        int
		Towers      int
	}{"field", 12, 30, 5}
	if err := Execute(&buf, "commtower.yaml.tmpl", data); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var out struct {
		Plot struct {
			Rows int `yaml:"rows"`
			Cols int `yaml:"cols"`
		} `yaml:"plot"`
		Simulation struct {
			Towers int `yaml:"towers"`
		} `yaml:"simulation"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("rendered config is not YAML: %v\n%s", err, buf.String())
	}
	if out.Plot.Rows != 12 || out.Plot.Cols != 30 || out.Simulation.Towers != 5 {
		t.Errorf("rendered config = %+v", out)
	}
}

func TestGet_Missing(t *testing.T) {
	if _, err := Get("nope.tmpl"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Get() error = %v, want not found", err)
	}
}
