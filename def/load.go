package def

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes and validates a YAML machine definition.
func ParseYAML(data []byte) (*MachineConfig, error) {
	var cfg MachineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// ParseJSON decodes and validates a JSON machine definition.
func ParseJSON(data []byte) (*MachineConfig, error) {
	var cfg MachineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// LoadFile reads a definition from path, dispatching on the file extension
// (.yaml/.yml or .json).
func LoadFile(path string) (*MachineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported definition format %q", filepath.Ext(path))
	}
}

// EncodeYAML serializes the definition as YAML.
func (m *MachineConfig) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// EncodeJSON serializes the definition as indented JSON.
func (m *MachineConfig) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// WriteFile serializes the definition to path, dispatching on the file
// extension like LoadFile.
func (m *MachineConfig) WriteFile(path string) error {
	var (
		data []byte
		err  error
	)
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = m.EncodeYAML()
	case ".json":
		data, err = m.EncodeJSON()
	default:
		return fmt.Errorf("unsupported definition format %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
