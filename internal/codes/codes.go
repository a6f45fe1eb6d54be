package codes

// ResultCodes maps UnrealBuildTool ECompilationResult exit codes to their descriptions
var ResultCodes = map[int]string{
	0: "Succeeded",
	1: "Canceled",
	2: "Up to date, nothing to build",
	3: "Failed due to header change",
	4: "Failed due to live coding limit",
	5: "Failed due to engine change",
	6: "Other compilation error",
	7: "Action is unsupported on this platform",
	8: "Unknown error",
}

// IsSuccess returns true if the exit code indicates a successful invocation
func IsSuccess(code int) bool {
	return code == 0 || code == 2
}

// GetErrorMessage returns the message for a given exit code, or a generic message if unknown
func GetErrorMessage(code int) string {
	if msg, ok := ResultCodes[code]; ok {
		return msg
	}

	return "Unknown error"
}
