// Package loaders reads and writes machine files, choosing the format by extension:
// .json, .yaml/.yml, .cue (record under "machine"), .star (Starlark script assigning "machine")
// and .gob checkpoints.
package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
	"github.com/reusee/turing/vars"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown machine file format")

type Format string

const (
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatCUE        Format = "cue"
	FormatStarlark   Format = "starlark"
	FormatCheckpoint Format = "checkpoint"
)

func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	case ".star", ".starlark":
		return FormatStarlark, nil
	case ".gob":
		return FormatCheckpoint, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// LoadRecord reads a record file.
func LoadRecord(path string) (machines.Record, error) {
	format, err := FormatOf(path)
	if err != nil {
		return machines.Record{}, err
	}
	var raw map[string]any
	switch format {

	case FormatJSON:
		raw, err = readJSON(path)

	case FormatYAML:
		raw, err = readYAML(path)

	case FormatCUE:
		raw, err = readCUE(path)

	case FormatStarlark:
		raw, err = readStarlark(path)

	case FormatCheckpoint:
		var m *machines.Machine
		m, err = loadCheckpoint(path)
		if err == nil {
			return machines.ToRecord(m), nil
		}

	}
	if err != nil {
		return machines.Record{}, fmt.Errorf("load %s: %w", path, err)
	}

	if err := expandTable(raw); err != nil {
		return machines.Record{}, fmt.Errorf("load %s: %w", path, err)
	}
	record, err := machines.RecordFromMap(raw)
	if err != nil {
		return machines.Record{}, fmt.Errorf("load %s: %w", path, err)
	}
	return record, nil
}

// LoadMachine reads a machine file. Checkpoints restore the exact run state,
// other formats give a machine at its start state.
func LoadMachine(path string) (*machines.Machine, error) {
	return loadMachine(path, machines.New)
}

func loadMachine(path string, newMachine machines.NewMachine) (*machines.Machine, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == FormatCheckpoint {
		return loadCheckpoint(path)
	}
	record, err := LoadRecord(path)
	if err != nil {
		return nil, err
	}
	def, err := record.Definition()
	if err != nil {
		return nil, err
	}
	tape := tapes.New(record.Tape, def.Blank)
	tape.Seek(vars.DerefOrZero(record.Head))
	return newMachine(def, tape)
}

func readJSON(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", machines.ErrInvalidRecord, err)
	}
	return raw, nil
}

func readYAML(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", machines.ErrInvalidRecord, err)
	}
	return raw, nil
}

// SaveRecord writes a record file atomically.
func SaveRecord(path string, record machines.Record) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var content []byte
	switch format {

	case FormatJSON:
		content, err = machines.EncodeJSON(record)

	case FormatYAML:
		content, err = machines.EncodeYAML(record)

	case FormatCUE, FormatStarlark:
		// both accept a JSON object literal
		content, err = machines.EncodeJSON(record)
		if err == nil {
			prefix := "machine: "
			if format == FormatStarlark {
				prefix = "machine = "
			}
			content = append([]byte(prefix), content...)
			content = append(content, '\n')
		}

	case FormatCheckpoint:
		m, err := machines.FromRecord(record)
		if err != nil {
			return err
		}
		return SaveMachine(path, m)

	}
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

// SaveMachine writes m. Checkpoints keep the run state, other formats keep the record only.
func SaveMachine(path string, m *machines.Machine) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if format == FormatCheckpoint {
		return saveCheckpoint(path, m)
	}
	return SaveRecord(path, machines.ToRecord(m))
}

// writeFile replaces path with content through a temporary file and a rename.
func writeFile(path string, content []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
