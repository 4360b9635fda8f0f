// Package config loads the site.json configuration.
//
// The configuration is intentionally open-ended: well-known keys are parsed
// into typed fields, and every other top-level key is preserved in Extra and
// passed through to templates verbatim.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Site holds the global site configuration. Loaded once, read-only afterwards.
type Site struct {
	Author          string
	Subtitle        string
	Description     string
	URL             string // canonical base URL; feeds need it for absolute links
	DateHumanFormat string // Go reference layout
	Menu            []MenuEntry
	ContentDirs     map[string]DirConfig
	Extra           map[string]any // unrecognized top-level keys, passed to templates
}

// MenuEntry is one (label, target) navigation pair.
type MenuEntry struct {
	Label  string
	Target string
}

// DirConfig holds per-content-directory settings.
type DirConfig struct {
	Name          string // directory name under the content root
	Title         string
	Slug          string
	GenerateIndex bool
	GenerateRSS   bool
}

// Well-known top-level keys; everything else lands in Extra.
const (
	keyAuthor          = "author"
	keySubtitle        = "site_subtitle"
	keyDescription     = "site_description"
	keyURL             = "site_url"
	keyDateHumanFormat = "date_human_format"
	keyMenu            = "menu"
	keyContentDirs     = "content_dirs"
)

var titleCaser = cases.Title(language.English)

// Load reads and parses the site configuration file.
//
// A missing or malformed file is a fatal configuration error; the orchestrator
// must not write any output after a failed Load.
func Load(path string) (*Site, error) {
	// Load .env if present so ${VAR} references in site.json resolve.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, sgerrors.ConfigNotFound(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sgerrors.ConfigMalformed(path, err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw map[string]any
	if err := json.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, sgerrors.ConfigMalformed(path, err)
	}

	return fromRaw(raw)
}

func fromRaw(raw map[string]any) (*Site, error) {
	site := &Site{Extra: make(map[string]any)}

	for key, value := range raw {
		switch key {
		case keyAuthor:
			site.Author = asString(value)
		case keySubtitle:
			site.Subtitle = asString(value)
		case keyDescription:
			site.Description = asString(value)
		case keyURL:
			site.URL = strings.TrimRight(asString(value), "/")
		case keyDateHumanFormat:
			site.DateHumanFormat = asString(value)
		case keyMenu:
			menu, err := parseMenu(value)
			if err != nil {
				return nil, err
			}
			site.Menu = menu
		case keyContentDirs:
			dirs, err := parseContentDirs(value)
			if err != nil {
				return nil, err
			}
			site.ContentDirs = dirs
		default:
			site.Extra[key] = value
		}
	}

	site.applyDefaults()
	return site, nil
}

func (s *Site) applyDefaults() {
	if s.Author == "" {
		s.Author = "Admin"
	}
	if s.DateHumanFormat == "" {
		s.DateHumanFormat = "02 Jan, 2006"
	}
	if s.Menu == nil {
		s.Menu = []MenuEntry{}
	}
	if s.ContentDirs == nil {
		s.ContentDirs = map[string]DirConfig{}
	}
	if s.Extra == nil {
		s.Extra = map[string]any{}
	}
}

// parseMenu converts the JSON menu value into entries. Two shapes are
// accepted: [label, target] pairs and {"label": ..., "target": ...} objects.
func parseMenu(value any) ([]MenuEntry, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, sgerrors.ValidationFailed(keyMenu, "must be a list of menu entries")
	}

	menu := make([]MenuEntry, 0, len(list))
	for _, item := range list {
		switch entry := item.(type) {
		case []any:
			if len(entry) != 2 {
				return nil, sgerrors.ValidationFailed(keyMenu, "list entries must be 2-element [label, target] pairs")
			}
			menu = append(menu, MenuEntry{Label: asString(entry[0]), Target: asString(entry[1])})
		case map[string]any:
			label, hasLabel := entry["label"]
			target, hasTarget := entry["target"]
			if !hasLabel || !hasTarget {
				return nil, sgerrors.ValidationFailed(keyMenu, "object entries must have label and target keys")
			}
			menu = append(menu, MenuEntry{Label: asString(label), Target: asString(target)})
		default:
			return nil, sgerrors.ValidationFailed(keyMenu, "each entry must be a [label, target] pair or a {label, target} object")
		}
	}
	return menu, nil
}

func parseContentDirs(value any) (map[string]DirConfig, error) {
	mapping, ok := value.(map[string]any)
	if !ok {
		return nil, sgerrors.ValidationFailed(keyContentDirs, "must be a mapping of directory name to settings")
	}

	dirs := make(map[string]DirConfig, len(mapping))
	for name, settings := range mapping {
		dc := DirConfig{Name: name, Slug: name, Title: titleCaser.String(name)}

		meta, ok := settings.(map[string]any)
		if !ok {
			if settings != nil {
				return nil, sgerrors.ValidationFailed(keyContentDirs, fmt.Sprintf("settings for %q must be an object", name))
			}
			dirs[name] = dc
			continue
		}

		if v, ok := meta["title"]; ok {
			dc.Title = asString(v)
		}
		if v, ok := meta["slug"]; ok {
			dc.Slug = asString(v)
		}
		dc.GenerateIndex = ToBool(meta["generate_index"])
		dc.GenerateRSS = ToBool(meta["generate_rss"])

		dirs[name] = dc
	}
	return dirs, nil
}

// ToBool interprets a loosely typed configuration value as a boolean.
// Strings like "true", "yes" and "1" are accepted, matching the lenient
// handling of hand-edited JSON configs.
func ToBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		switch strings.ToLower(v) {
		case "true", "yes", "ok", "si", "oui", "da", "1":
			return true
		}
		return false
	default:
		return false
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
