package fieldconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML field
// configuration file it finds. When fsys is nil or holds no configuration
// files, the returned store is empty. Duplicate field paths across files are
// an error so documents cannot silently shadow each other.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[string]FieldConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldconfig: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for key, raw := range doc.Fields {
			normalised := NormalizePath(key)
			if normalised == "" {
				return fmt.Errorf("fieldconfig: file %s field key %q normalises to an empty path", path, key)
			}
			if _, exists := store.fields[normalised]; exists {
				return fmt.Errorf("fieldconfig: duplicate field path %q (file %s)", normalised, path)
			}

			cfg, err := normaliseField(raw, normalised, path)
			if err != nil {
				return err
			}
			cfg.OriginalPath = key
			store.fields[normalised] = cfg
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("fieldconfig: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("fieldconfig: parse %s: invalid JSON or YAML", source)
}

func normaliseField(cfg FieldConfig, path, source string) (FieldConfig, error) {
	if cfg.Type != "" {
		if _, err := parseInputType(cfg.Type); err != nil {
			return FieldConfig{}, fmt.Errorf("fieldconfig: field %q (file %s): %w", path, source, err)
		}
	}

	out := cfg
	out.Label = sanitizeText(cfg.Label)
	out.Placeholder = sanitizeText(cfg.Placeholder)

	if len(cfg.Options) > 0 {
		out.Options = make([]OptionConfig, len(cfg.Options))
		for i, option := range cfg.Options {
			label := sanitizeText(option.Label)
			if label == "" {
				return FieldConfig{}, fmt.Errorf("fieldconfig: field %q (file %s) option %d has an empty label", path, source, i)
			}
			out.Options[i] = OptionConfig{Label: label, Value: option.Value}
		}
	}

	return out, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
