package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/olympic-medals/internal/medal"
	"github.com/pfrederiksen/olympic-medals/internal/noc"
)

const (
	PayloadFile    = "medals.json"
	NameToCodeFile = "name_to_noc.json"
	CodeToGeoFile  = "noc_to_iso.json"
)

// Storage reads and writes data files in a single directory
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating the directory if needed
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Path returns the full path of a file in the data directory
func (s *Storage) Path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// SavePayload overwrites medals.json and returns its path
func (s *Storage) SavePayload(payload *medal.Payload) (string, error) {
	path := s.Path(PayloadFile)
	if err := writeJSON(path, payload); err != nil {
		return "", fmt.Errorf("writing payload: %w", err)
	}
	return path, nil
}

// LoadPayload reads medals.json
func (s *Storage) LoadPayload() (*medal.Payload, error) {
	var payload medal.Payload
	if err := readJSON(s.Path(PayloadFile), &payload); err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return &payload, nil
}

// SaveMapping overwrites both mapping files
func (s *Storage) SaveMapping(m noc.Mapping) error {
	if err := writeJSON(s.Path(NameToCodeFile), nonNil(m.NameToCode)); err != nil {
		return fmt.Errorf("writing name mapping: %w", err)
	}
	if err := writeJSON(s.Path(CodeToGeoFile), nonNil(m.CodeToGeo)); err != nil {
		return fmt.Errorf("writing geo mapping: %w", err)
	}
	return nil
}

// LoadMapping reads both mapping files. Missing files give an empty mapping and
// false, so a first run works from the built-in tables alone.
func (s *Storage) LoadMapping() (noc.Mapping, bool, error) {
	m := noc.NewMapping()

	found := false
	for _, f := range []struct {
		name string
		dest *map[string]string
	}{
		{NameToCodeFile, &m.NameToCode},
		{CodeToGeoFile, &m.CodeToGeo},
	} {
		err := readJSON(s.Path(f.name), f.dest)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return noc.Mapping{}, false, fmt.Errorf("reading %s: %w", f.name, err)
		}
		found = true
	}

	if m.NameToCode == nil {
		m.NameToCode = make(map[string]string)
	}
	if m.CodeToGeo == nil {
		m.CodeToGeo = make(map[string]string)
	}
	return m, found, nil
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
