package entity

import "strings"

// ConnectionState tracks discovery of the bridge plugin.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// PluginInfo is the identity reported by the bridge discovery service.
type PluginInfo struct {
	PluginName  string
	PackageName string
	NodeName    string
	ConfigFiles []string
}

// Package returns the owning package name. When the bridge does not report
// one it is the plugin name up to the first dot.
func (p PluginInfo) Package() string {
	if p.PackageName != "" {
		return p.PackageName
	}
	name, _, _ := strings.Cut(p.PluginName, ".")
	return name
}

// ConfigFile is a selectable configuration file, shown by base name.
type ConfigFile struct {
	Name string
	Path string
}

// BaseName returns the final element of p. Both slash and backslash count as
// separators because the bridge may report paths from either platform.
func BaseName(p string) string {
	trimmed := strings.TrimRight(p, `/\`)
	if trimmed == "" {
		return p
	}
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// ConfigFileList maps base names to full paths in discovery order. A later
// path with an already-seen base name replaces the earlier one in place.
func ConfigFileList(paths []string) []ConfigFile {
	files := make([]ConfigFile, 0, len(paths))
	seen := make(map[string]int, len(paths))
	for _, p := range paths {
		name := BaseName(p)
		if i, ok := seen[name]; ok {
			files[i].Path = p
			continue
		}
		seen[name] = len(files)
		files = append(files, ConfigFile{Name: name, Path: p})
	}
	return files
}
