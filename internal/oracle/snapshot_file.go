package oracle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"synth-generator/internal/model"
)

// Current schema version - increment when snapshotPayload format changes.
const snapshotSchemaVersion uint16 = 1

// ErrSchemaMismatch is returned when a snapshot was written by an
// incompatible version.
var ErrSchemaMismatch = errors.New("snapshot schema mismatch")

// snapshotPayload is the on-disk form of a Snapshot. Maps are flattened
// into sorted slices so that equal snapshots encode to equal bytes.
type snapshotPayload struct {
	Schema    uint16
	Contracts []ContractDecl
	Hosts     []hostPayload
	Scopes    []scopePayload
	Packages  []packagePayload
}

type packagePayload struct {
	Qualifier string
	Path      string
}

type hostPayload struct {
	Name       string
	Candidates []model.MappingCandidate
}

type scopePayload struct {
	Name  string
	Names []string
	Kinds []DeclKind
}

// WriteSnapshot encodes s to w.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	payload := snapshotPayload{Schema: snapshotSchemaVersion}

	for _, name := range sortedKeys(s.Contracts) {
		payload.Contracts = append(payload.Contracts, *s.Contracts[name])
	}

	for _, name := range sortedKeys(s.Hosts) {
		payload.Hosts = append(payload.Hosts, hostPayload{Name: name, Candidates: s.Hosts[name]})
	}

	for _, name := range sortedKeys(s.Scopes) {
		sp := scopePayload{Name: name}
		for _, n := range s.Scopes[name].Names() {
			sp.Names = append(sp.Names, n)
			sp.Kinds = append(sp.Kinds, s.Scopes[name][n])
		}

		payload.Scopes = append(payload.Scopes, sp)
	}

	for _, q := range sortedKeys(s.Packages) {
		payload.Packages = append(payload.Packages, packagePayload{Qualifier: q, Path: s.Packages[q]})
	}

	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&payload); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var payload snapshotPayload

	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	if payload.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, payload.Schema, snapshotSchemaVersion)
	}

	s := NewSnapshot()

	for i := range payload.Contracts {
		decl := payload.Contracts[i]
		s.AddContract(&decl)
	}

	for _, h := range payload.Hosts {
		s.Hosts[h.Name] = h.Candidates
	}

	for _, sp := range payload.Scopes {
		if len(sp.Names) != len(sp.Kinds) {
			return nil, fmt.Errorf("decoding snapshot: scope %q is corrupt", sp.Name)
		}

		names := make(NameSet, len(sp.Names))
		for i, n := range sp.Names {
			names[n] = sp.Kinds[i]
		}

		s.Scopes[sp.Name] = names
	}

	for _, p := range payload.Packages {
		s.Packages[p.Qualifier] = p.Path
	}

	return s, nil
}

// SaveSnapshot writes a snapshot file atomically.
func SaveSnapshot(path string, s *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "snapshot-*")
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}

	tmp := f.Name()
	defer func() {
		// Already renamed on success; only leftovers are removed.
		_ = os.Remove(tmp)
	}()

	if err := WriteSnapshot(f, s); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing snapshot file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}

	return nil
}

// LoadSnapshot reads a snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer f.Close()

	return ReadSnapshot(f)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
