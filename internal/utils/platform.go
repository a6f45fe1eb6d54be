package utils

import "runtime"

// ValidConfigurations lists the build configurations UnrealBuildTool accepts
var ValidConfigurations = []string{"Debug", "DebugGame", "Development", "Shipping", "Test"}

// DefaultPlatform returns the UnrealBuildTool platform identifier for the host OS
func DefaultPlatform() string {
	switch runtime.GOOS {
	case "windows":
		return "Win64"
	case "darwin":
		return "Mac"
	default:
		return "Linux"
	}
}

// HostBuildTarget returns the target UnrealBuildTool is asked to gather for.
// Linux installs ship the Editor target; everywhere else the Game target is
// the one guaranteed to exist.
func HostBuildTarget() string {
	if runtime.GOOS == "linux" {
		return "UE4Editor"
	}

	return "UE4Game"
}

// IsValidConfiguration checks a configuration name against ValidConfigurations
func IsValidConfiguration(configuration string) bool {
	for _, c := range ValidConfigurations {
		if c == configuration {
			return true
		}
	}

	return false
}
