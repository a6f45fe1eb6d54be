// Package interrogator extracts third-party library build flags from the
// UnrealBuildTool module graph.
//
// UnrealBuildTool is invoked in gather mode to export its module graph as
// JSON; the interrogator filters the export down to engine-bundled
// third-party modules, normalizes their path lists against the engine root,
// and flattens them into the include directories, library directories, link
// libraries, definitions, and prefix directories a downstream compiler or
// linker invocation needs. Parsed module lists are cached per engine version
// through an injected store, so repeat interrogations skip the tool entirely.
package interrogator

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jonpas/ue4cli/internal/cache"
	"github.com/jonpas/ue4cli/internal/utils"
)

const (
	// engineSourceDir is the subdirectory UnrealBuildTool reports
	// intra-engine relative paths against
	engineSourceDir = "Engine/Source"

	// cacheKeyThirdParty is the data key for the cached third-party module list
	cacheKeyThirdParty = "ThirdPartyLibraries"

	// exportFileName is the JSON export file name inside the temp directory
	exportFileName = "ubt_output.json"
)

// RunFunc invokes UnrealBuildTool for the given target, platform, and
// configuration. The extra arguments request gather-mode JSON export; the
// export file path is embedded in them.
type RunFunc func(target, platform, configuration string, extraArgs []string) error

// Store is the persistent key-value collaborator for cached interrogation
// data. Values are opaque bytes keyed by (engine version, data key).
type Store interface {
	GetCachedDataKey(version, key string) ([]byte, bool, error)
	SetCachedDataKey(version, key string, data []byte) error
}

// Interrogator asks UnrealBuildTool about the build flags for engine-bundled
// third-party libraries
type Interrogator struct {
	engineRoot  string
	versionHash string
	runUBT      RunFunc
	store       Store
	logger      *log.Logger
	removeAll   func(string) error
}

// New creates an interrogator for the engine rooted at engineRoot.
// versionHash identifies the engine build for cache keying. A nil store
// disables caching; a nil logger falls back to the default stderr logger.
func New(engineRoot, versionHash string, runUBT RunFunc, store Store, logger *log.Logger) *Interrogator {
	if store == nil {
		store = cache.NewNull()
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Interrogator{
		engineRoot:  strings.ReplaceAll(engineRoot, "\\", "/"),
		versionHash: versionHash,
		runUBT:      runUBT,
		store:       store,
		logger:      logger,
		removeAll:   os.RemoveAll,
	}
}

// List returns the names of the engine-bundled third-party libraries,
// sorted ascending
func (i *Interrogator) List(platform, configuration string) ([]string, error) {
	modules, err := i.thirdPartyModules(platform, configuration)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(modules))
	for _, m := range modules {
		names = append(names, m.Name)
	}

	return names, nil
}

// Interrogate resolves the build flags for the requested libraries.
//
// Libraries present in overrides never touch module resolution; their
// override bundles are merged into the result last, in request order.
// Requested names with no matching module are reported as a warning and
// otherwise ignored.
func (i *Interrogator) Interrogate(platform, configuration string, libraries []string, overrides map[string]*LibraryDetails) (*LibraryDetails, error) {
	// Determine which libraries need their modules resolved, and which are override-only
	var libModules []string
	for _, lib := range libraries {
		if _, ok := overrides[lib]; !ok {
			libModules = append(libModules, lib)
		}
	}

	details := &LibraryDetails{}
	if len(libModules) > 0 {
		modules, err := i.thirdPartyModules(platform, configuration)
		if err != nil {
			return nil, err
		}

		// Filter the module list to include only those that were requested
		requested := make(map[string]bool, len(libModules))
		for _, lib := range libModules {
			requested[lib] = true
		}

		found := make(map[string]bool, len(libModules))
		selected := make([]Module, 0, len(libModules))
		for _, m := range modules {
			if requested[m.Name] {
				selected = append(selected, m)
				found[m.Name] = true
			}
		}

		// Emit a warning if any of the requested modules are not supported
		var unsupported []string
		for _, lib := range libModules {
			if !found[lib] {
				unsupported = append(unsupported, strconv.Quote(lib))
			}
		}
		if len(unsupported) > 0 {
			i.logger.Warnf("unsupported libraries %s", strings.Join(unsupported, ","))
		}

		// Some libraries are listed as just the filename without the leading
		// directory (especially prevalent under Windows)
		for idx := range selected {
			i.resolveBareLibraries(&selected[idx])
		}

		details = i.aggregate(selected)
	}

	// Apply any overrides, in request order
	for _, lib := range libraries {
		if override, ok := overrides[lib]; ok {
			details.Merge(override)
		}
	}

	return details, nil
}

// aggregate flattens the path and definition lists of the selected modules
// into a single LibraryDetails
func (i *Interrogator) aggregate(modules []Module) *LibraryDetails {
	var moduleDirs, libraryPaths, systemIncludes, publicIncludes, privateIncludes, definitions, libs []string
	for _, m := range modules {
		moduleDirs = append(moduleDirs, m.Directory)
		libraryPaths = append(libraryPaths, m.PublicLibraryPaths...)
		systemIncludes = append(systemIncludes, m.PublicSystemIncludePaths...)
		publicIncludes = append(publicIncludes, m.PublicIncludePaths...)
		privateIncludes = append(privateIncludes, m.PrivateIncludePaths...)
		definitions = append(definitions, m.PublicDefinitions...)
		libs = append(libs, m.PublicAdditionalLibraries...)
	}

	includeDirs := i.absolutePaths(concat(systemIncludes, publicIncludes, privateIncludes))
	linkDirs := i.absolutePaths(libraryPaths)
	modulePaths := i.absolutePaths(moduleDirs)

	// Compose the prefix directories from the module root directories, the
	// header and library paths, and their direct parent directories
	prefixDirs := concat(modulePaths, includeDirs, linkDirs)
	for _, p := range concat(includeDirs, linkDirs) {
		prefixDirs = append(prefixDirs, path.Dir(p))
	}

	return NewLibraryDetails(prefixDirs, includeDirs, linkDirs, definitions, i.absolutePaths(libs))
}

// resolveBareLibraries rewrites bare library filenames onto the module's
// first library path, leaving references that carry a directory component
// untouched
func (i *Interrogator) resolveBareLibraries(m *Module) {
	if len(m.PublicAdditionalLibraries) == 0 || len(m.PublicLibraryPaths) == 0 {
		return
	}

	base := i.absolutePaths(m.PublicLibraryPaths)[0]

	libs := make(StringList, 0, len(m.PublicAdditionalLibraries))
	for _, lib := range m.PublicAdditionalLibraries {
		lib = strings.ReplaceAll(lib, "\\", "/")
		if !strings.Contains(lib, "/") {
			lib = path.Join(base, lib)
		}

		libs = append(libs, lib)
	}

	m.PublicAdditionalLibraries = libs
}

// absolutePaths converts the supplied paths to absolute, forward-slash form.
// Paths that are already absolute, and bare filenames without a directory
// component, pass through unchanged; everything else is rebased under the
// engine source tree. A single leading "../" marker is stripped first, per
// the convention UnrealBuildTool uses for intra-engine relative paths.
func (i *Interrogator) absolutePaths(paths []string) []string {
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.ReplaceAll(p, "\\", "/")
		p = strings.TrimPrefix(p, "../")

		if !isAbsPath(p) && strings.Contains(p, "/") {
			p = path.Join(i.engineRoot, engineSourceDir, p)
		}

		resolved = append(resolved, p)
	}

	return resolved
}

// thirdPartyModules runs UnrealBuildTool in JSON export mode and extracts the
// list of third-party library modules.
//
// The result is cached under the engine version hash alone: one gather-mode
// export enumerates the full module graph, so the cached list is independent
// of platform and configuration. A cache hit short-circuits the tool
// invocation entirely.
func (i *Interrogator) thirdPartyModules(platform, configuration string) ([]Module, error) {
	// If we have previously cached the library list for the current engine
	// version, use the cached data
	if data, hit, err := i.store.GetCachedDataKey(i.versionHash, cacheKeyThirdParty); err == nil && hit {
		var modules []Module
		if err := json.Unmarshal(data, &modules); err == nil {
			return modules, nil
		}
		// Corrupt entry, treat as a miss and re-gather
	}

	// Create a temp directory to hold the JSON file
	tempDir, err := os.MkdirTemp("", "ue4cli-")
	if err != nil {
		return nil, err
	}
	defer func() {
		// Removal is best-effort; a leftover temp directory is harmless
		_ = i.removeAll(tempDir)
	}()

	jsonFile := filepath.Join(tempDir, exportFileName)

	// Invoke UnrealBuildTool in JSON export mode (gathering mode is a
	// prerequisite of JSON export)
	err = i.runUBT(utils.HostBuildTarget(), platform, configuration, []string{"-gather", "-jsonexport=" + jsonFile, "-SkipBuild"})
	if err != nil {
		return nil, err
	}

	// Parse the JSON output
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return nil, &ParseError{Path: jsonFile, Err: err}
	}

	modules, err := ParseExport(data)
	if err != nil {
		return nil, &ParseError{Path: jsonFile, Err: err}
	}

	// Extract the list of third-party library modules
	thirdparty := make([]Module, 0, len(modules))
	for _, m := range modules {
		if m.Type == ModuleTypeThirdParty {
			thirdparty = append(thirdparty, m)
		}
	}

	// Cache the list of libraries for use by subsequent runs
	if encoded, err := json.Marshal(thirdparty); err == nil {
		if err := i.store.SetCachedDataKey(i.versionHash, cacheKeyThirdParty, encoded); err != nil {
			i.logger.Warnf("failed to cache third-party library list: %v", err)
		}
	}

	return thirdparty, nil
}

// isAbsPath reports whether a forward-slash path is absolute, accepting both
// rooted POSIX paths and Windows drive prefixes
func isAbsPath(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}

	return len(p) >= 2 && p[1] == ':'
}

func concat(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}

	return all
}
