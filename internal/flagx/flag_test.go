package flagx

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-c", "careerforge.yaml", "-a", "http://localhost:8080"},
			allowed: []string{"-c"},
			want:    []string{"-c", "careerforge.yaml"},
		},
		{
			name:    "equals form kept",
			args:    []string{"-config=careerforge.json", "-l", "debug"},
			allowed: []string{"-config"},
			want:    []string{"-config=careerforge.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-c", "-l", "debug"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-x", "1", "--y=2"},
			allowed: []string{"-c", "-config"},
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "repeated flag preserved in order",
			args:    []string{"-c", "one.yaml", "-c", "two.yaml"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.yaml", "-c", "two.yaml"},
		},
		{
			name:    "several allowed flags",
			args:    []string{"-a", "http://api", "-c", "conf.yaml", "-s", "state.db"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-a", "http://api", "-s", "state.db"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"careerforge", "-c", "/etc/cf.yaml"}
		assert.Equal(t, "/etc/cf.yaml", ConfigFileFlag())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"careerforge", "-config", "/etc/cf.json"}
		assert.Equal(t, "/etc/cf.json", ConfigFileFlag())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"careerforge", "-a", "http://localhost"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "b.yaml", configFileFlag([]string{"-c", "a.yaml", "-config=b.yaml"}))
	})
}
