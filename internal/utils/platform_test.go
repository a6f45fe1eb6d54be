package utils

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPlatform(t *testing.T) {
	platform := DefaultPlatform()

	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, "Win64", platform)
	case "darwin":
		assert.Equal(t, "Mac", platform)
	default:
		assert.Equal(t, "Linux", platform)
	}
}

func TestHostBuildTarget(t *testing.T) {
	target := HostBuildTarget()

	if runtime.GOOS == "linux" {
		assert.Equal(t, "UE4Editor", target)
	} else {
		assert.Equal(t, "UE4Game", target)
	}
}

func TestIsValidConfiguration(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Debug", true},
		{"DebugGame", true},
		{"Development", true},
		{"Shipping", true},
		{"Test", true},
		{"", false},
		{"development", false},
		{"Release", false},
	}

	for _, test := range tests {
		result := IsValidConfiguration(test.input)
		assert.Equal(t, test.expected, result, "IsValidConfiguration(%q)", test.input)
	}
}
