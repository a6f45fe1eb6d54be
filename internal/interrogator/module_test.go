package interrogator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringList
		wantErr  bool
	}{
		{"single string", `"Engine/Source"`, StringList{"Engine/Source"}, false},
		{"list of strings", `["a", "b"]`, StringList{"a", "b"}, false},
		{"empty list", `[]`, StringList{}, false},
		{"number rejected", `42`, nil, true},
		{"object rejected", `{"a": 1}`, nil, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var s StringList
			err := json.Unmarshal([]byte(test.input), &s)

			if test.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, s)
		})
	}
}

func TestParseExport(t *testing.T) {
	data := []byte(`{
		"Modules": {
			"key2": {"Name": "zlib", "Type": "EngineThirdParty", "Directory": "/opt/UE/Engine/Source/ThirdParty/zlib"},
			"key1": {"Name": "Core", "Type": "Engine", "Directory": "/opt/UE/Engine/Source/Runtime/Core"},
			"key3": {"Name": "libpng", "Type": "EngineThirdParty", "PublicIncludePaths": "../ThirdParty/libpng"}
		}
	}`)

	modules, err := ParseExport(data)
	require.NoError(t, err)
	require.Len(t, modules, 3)

	// Sorted by name regardless of key order
	assert.Equal(t, "Core", modules[0].Name)
	assert.Equal(t, "libpng", modules[1].Name)
	assert.Equal(t, "zlib", modules[2].Name)

	// String-or-list field normalized to a list
	assert.Equal(t, StringList{"../ThirdParty/libpng"}, modules[1].PublicIncludePaths)
}

func TestParseExportErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"Modules": `},
		{"missing modules object", `{"Targets": {}}`},
		{"module missing name", `{"Modules": {"k": {"Type": "EngineThirdParty"}}}`},
		{"module missing type", `{"Modules": {"k": {"Name": "zlib"}}}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseExport([]byte(test.input))
			assert.Error(t, err)
		})
	}
}
