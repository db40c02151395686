package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuild(t *testing.T) {
	tests := []struct {
		name string
		bi   *debug.BuildInfo
		want string
	}{
		{
			name: "no build info",
			want: "javagen dev",
		},
		{
			name: "devel module",
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: "javagen dev",
		},
		{
			name: "tagged module",
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.time", Value: "2024-01-02T03:04:05Z"},
				},
			},
			want: "javagen v1.2.0 (0123456)",
		},
		{
			name: "modified checkout",
			bi: &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "fedcba9876543210"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "javagen dev (fedcba9+dirty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fromBuild(tt.bi).String())
		})
	}
}

func TestLdflagsWin(t *testing.T) {
	Version, Commit = "v2.0.0", "abc1234"
	t.Cleanup(func() { Version, Commit = "", "" })

	info := fromBuild(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0000000000"}},
	})
	assert.Equal(t, "javagen v2.0.0 (abc1234)", info.String())
	assert.Equal(t, "Generated by javagen v2.0.0. Do not edit.", info.Banner())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.Version)
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
}
