package mapping

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"synth-generator/internal/common"
)

// LoadFile loads and parses a YAML synthesis file from the given path.
func LoadFile(path string) (*SynthesisFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesis file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a SynthesisFile.
func Parse(data []byte) (*SynthesisFile, error) {
	var sf SynthesisFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse synthesis YAML: %w", err)
	}

	applyDefaults(&sf)

	return &sf, nil
}

// ident normalizes an identifier or reference to NFC so that names typed
// with combining characters compare equal to their composed forms.
func ident(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// applyDefaults fills in default values for optional fields and
// normalizes every name the engine compares.
func applyDefaults(sf *SynthesisFile) {
	if sf.Version == "" {
		sf.Version = "1"
	}

	for i := range sf.Requests {
		r := &sf.Requests[i]
		r.Name = ident(r.Name)
		r.Contract = ident(r.Contract)
		r.Host = ident(r.Host)
		r.Scope = ident(r.Scope)
		r.Type = ident(r.Type)
		r.Receiver = ident(r.Receiver)
		r.Package = ident(r.Package)

		if r.Name == "" {
			r.Name = r.Type
		}
	}

	for i := range sf.Contracts {
		c := &sf.Contracts[i]
		c.Name = ident(c.Name)
		c.Type = ident(c.Type)

		for j := range c.Extends {
			c.Extends[j] = ident(c.Extends[j])
		}

		for j := range c.Members {
			c.Members[j].Name = ident(c.Members[j].Name)
			normalizeParams(c.Members[j].Params)
		}
	}

	for i := range sf.Hosts {
		h := &sf.Hosts[i]
		h.Name = ident(h.Name)

		h.Qualifier = ident(h.Qualifier)
		if h.Qualifier == "" {
			h.Qualifier = common.PkgAlias(h.Name)
		}

		for j := range h.Fragments {
			f := &h.Fragments[j]
			f.Name = ident(f.Name)
			f.Target = ident(f.Target)
			normalizeParams(f.Params)
		}
	}

	for i := range sf.Scopes {
		s := &sf.Scopes[i]
		s.Name = ident(s.Name)

		if len(s.Names) == 0 {
			continue
		}

		names := make(map[string]string, len(s.Names))
		for n, k := range s.Names {
			if k == "" {
				k = "type"
			}

			names[ident(n)] = k
		}

		s.Names = names
	}
}

func normalizeParams(params ParamList) {
	for i := range params {
		params[i].Name = ident(params[i].Name)
		params[i].Type = ident(params[i].Type)
	}
}

// Marshal serializes a SynthesisFile to YAML.
func Marshal(sf *SynthesisFile) ([]byte, error) {
	return yaml.Marshal(sf)
}

// WriteFile writes a SynthesisFile to the given path.
func WriteFile(sf *SynthesisFile, path string) error {
	data, err := Marshal(sf)
	if err != nil {
		return fmt.Errorf("failed to marshal synthesis file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write synthesis file %s: %w", path, err)
	}

	return nil
}
