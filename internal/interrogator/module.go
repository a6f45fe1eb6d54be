package interrogator

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ModuleTypeThirdParty marks engine-bundled external library modules in the
// UnrealBuildTool module graph
const ModuleTypeThirdParty = "EngineThirdParty"

// StringList is a JSON field that may be encoded as either a single string or
// an array of strings. UnrealBuildTool exports use both forms interchangeably,
// so the quirk is resolved once here at the parse boundary.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	*s = StringList(many)
	return nil
}

// Module is one entry of the UnrealBuildTool JSON export.
// Read-only after parsing; cached verbatim across runs for one engine version.
type Module struct {
	Name                      string     `json:"Name"`
	Type                      string     `json:"Type"`
	Directory                 string     `json:"Directory"`
	PublicAdditionalLibraries StringList `json:"PublicAdditionalLibraries"`
	PublicLibraryPaths        StringList `json:"PublicLibraryPaths"`
	PublicSystemIncludePaths  StringList `json:"PublicSystemIncludePaths"`
	PublicIncludePaths        StringList `json:"PublicIncludePaths"`
	PrivateIncludePaths       StringList `json:"PrivateIncludePaths"`
	PublicDefinitions         StringList `json:"PublicDefinitions"`
}

// export is the top-level shape of the UnrealBuildTool JSON export.
// Map keys are arbitrary and discarded; Name identifies a module.
type export struct {
	Modules map[string]Module `json:"Modules"`
}

// ParseExport parses an UnrealBuildTool JSON export into module records.
// Modules are sorted by name so callers see a deterministic order regardless
// of map iteration.
func ParseExport(data []byte) ([]Module, error) {
	var ex export
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, err
	}

	if ex.Modules == nil {
		return nil, fmt.Errorf("missing Modules object")
	}

	modules := make([]Module, 0, len(ex.Modules))
	for key, m := range ex.Modules {
		if m.Name == "" {
			return nil, fmt.Errorf("module %q missing Name", key)
		}

		if m.Type == "" {
			return nil, fmt.Errorf("module %q missing Type", m.Name)
		}

		modules = append(modules, m)
	}

	sort.Slice(modules, func(a, b int) bool {
		return modules[a].Name < modules[b].Name
	})

	return modules, nil
}
