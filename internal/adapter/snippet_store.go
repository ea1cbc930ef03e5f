package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "strata.dev/pkg/strata/internal/model"
	"strata.dev/pkg/strata/pkg"
)

const (
	// ManifestFileName is the manifest written at the root of every output directory.
	ManifestFileName = "manifest.yaml"
	// ManifestVersion is the current manifest format version.
	ManifestVersion = 1
	// OriginalsDir holds the unmodified extractions.
	OriginalsDir = "methods"
	// ShardDirPrefix prefixes the per-shard output directories.
	ShardDirPrefix = "shard_"
)

// SnippetStore persists records as one file per snippet plus a manifest.
type SnippetStore interface {
	// Save writes every record of the spill under root and returns the
	// manifest, ordered by source.
	Save(ctx context.Context, root m.Path, runID string, records pkg.FileSpill[m.Record]) (m.Manifest, error)
	// Load reads the manifest under root.
	Load(ctx context.Context, root m.Path) (m.Manifest, error)
	// Read returns the snippet text of one manifest entry.
	Read(ctx context.Context, root m.Path, entry m.ManifestEntry) (string, error)
	// Merge combines the shard directories under root into root itself.
	Merge(ctx context.Context, root m.Path, runID string) (m.Manifest, error)
}

// LocalSnippetStore stores snippets through a SourceFSAdapter.
type LocalSnippetStore struct {
	fs  SourceFSAdapter
	now func() time.Time
}

// NewLocalSnippetStore returns a SnippetStore writing through fs.
func NewLocalSnippetStore(fs SourceFSAdapter) *LocalSnippetStore {
	return &LocalSnippetStore{fs: fs, now: time.Now}
}

// ShardDir returns the output directory of one shard.
func ShardDir(root m.Path, shardIndex int) m.Path {
	return m.Path(filepath.Join(string(root), fmt.Sprintf("%s%d", ShardDirPrefix, shardIndex)))
}

// SnippetPath returns the slash-separated path of a record relative to the
// output root: methods/<file> for originals and stratum<N>/<axis>_<intensity>/<file>
// for variants.
func SnippetPath(record m.Record) string {
	name := snippetFileName(record)
	if record.Original {
		return path.Join(OriginalsDir, name)
	}

	return path.Join(fmt.Sprintf("stratum%d", record.Stratum), string(record.Axis)+"_"+string(record.Intensity), name)
}

// snippetFileName flattens the record's location into one file name:
// <source>__<type>.<unit>[~<ordinal>]<ext>. Distinct records never share a name.
func snippetFileName(record m.Record) string {
	var b strings.Builder

	b.WriteString(escapeName(strings.TrimSuffix(record.SourceID, filepath.Ext(record.SourceID)), true))
	b.WriteString("__")

	if record.EnclosingType != "" {
		b.WriteString(escapeName(record.EnclosingType, false))
		b.WriteByte('.')
	}

	b.WriteString(escapeName(record.UnitName, false))

	if record.Ordinal > 1 {
		fmt.Fprintf(&b, "~%d", record.Ordinal)
	}

	b.WriteString(filepath.Ext(record.SourceID))

	return b.String()
}

// unsafeName holds the bytes written as %XX in file names.
const unsafeName = "%\\:<>*?|\" "

// escapeName writes the bytes of s that are unsafe in a file name as %XX.
// In a source path "/" becomes "_" and a literal "_" is escaped, so the
// first "__" of a file name always ends the source part.
func escapeName(s string, source bool) string {
	if source {
		s = strings.TrimPrefix(s, "./")
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case source && c == '/':
			b.WriteByte('_')
		case c < 0x20 || strings.IndexByte(unsafeName, c) >= 0 || c == '/' || (source && c == '_'):
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// Save implements SnippetStore.
func (s *LocalSnippetStore) Save(ctx context.Context, root m.Path, runID string, records pkg.FileSpill[m.Record]) (m.Manifest, error) {
	manifest := m.Manifest{Version: ManifestVersion, RunID: runID, Created: s.now().UTC()}
	written := make(map[string]string)

	err := records.Range(func(_ uint64, record m.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel := SnippetPath(record)
		if id, ok := written[rel]; ok && id != record.ID {
			return fmt.Errorf("%w: %s and %s both map to %s", m.ErrSnippetPathConflict, id, record.ID, rel)
		}

		written[rel] = record.ID

		if err := s.fs.WriteFile(ctx, s.fs.JoinPath(ctx, string(root), filepath.FromSlash(rel)), []byte(record.Text), 0o600); err != nil {
			return fmt.Errorf("write snippet %s: %w", record.ID, err)
		}

		manifest.Entries = append(manifest.Entries, manifestEntry(record, rel))

		return nil
	})
	if err != nil {
		return m.Manifest{}, err
	}

	// Files finish in any order; records of one file stay contiguous.
	sort.SliceStable(manifest.Entries, func(i, j int) bool {
		return manifest.Entries[i].Source < manifest.Entries[j].Source
	})

	if err := s.writeManifest(ctx, root, manifest); err != nil {
		return m.Manifest{}, err
	}

	slog.Info("saved snippets", "root", root, "entries", len(manifest.Entries))

	return manifest, nil
}

func manifestEntry(record m.Record, rel string) m.ManifestEntry {
	entry := m.ManifestEntry{
		ID:        record.ID,
		Source:    record.SourceID,
		Type:      record.EnclosingType,
		Unit:      record.UnitName,
		Path:      rel,
		Original:  record.Original,
		Unchanged: record.Unchanged,
	}

	if !record.Original {
		entry.Stratum = record.Stratum
		entry.Axis = string(record.Axis)
		entry.Intensity = string(record.Intensity)
	}

	return entry
}

func (s *LocalSnippetStore) writeManifest(ctx context.Context, root m.Path, manifest m.Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := s.fs.WriteFile(ctx, s.fs.JoinPath(ctx, string(root), ManifestFileName), data, 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Load implements SnippetStore.
func (s *LocalSnippetStore) Load(ctx context.Context, root m.Path) (m.Manifest, error) {
	data, err := s.fs.ReadFile(ctx, s.fs.JoinPath(ctx, string(root), ManifestFileName))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}

	if manifest.Version > ManifestVersion {
		return m.Manifest{}, fmt.Errorf("manifest version %d is newer than supported version %d", manifest.Version, ManifestVersion)
	}

	return manifest, nil
}

// Read implements SnippetStore.
func (s *LocalSnippetStore) Read(ctx context.Context, root m.Path, entry m.ManifestEntry) (string, error) {
	data, err := s.fs.ReadFile(ctx, s.fs.JoinPath(ctx, string(root), filepath.FromSlash(entry.Path)))
	if err != nil {
		return "", fmt.Errorf("read snippet %s: %w", entry.ID, err)
	}

	return string(data), nil
}

// Merge implements SnippetStore. Entries are copied from every shard_<i>
// directory into root and listed sorted by ID; an ID present in several
// shards is kept from the first shard only.
func (s *LocalSnippetStore) Merge(ctx context.Context, root m.Path, runID string) (m.Manifest, error) {
	shards, err := s.fs.Glob(ctx, filepath.Join(string(root), ShardDirPrefix+"*"))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("find shards: %w", err)
	}

	if len(shards) == 0 {
		return m.Manifest{}, fmt.Errorf("no %s* directories found in %s", ShardDirPrefix, root)
	}

	merged := m.Manifest{Version: ManifestVersion, RunID: runID, Created: s.now().UTC()}
	seen := make(map[string]bool)

	for _, shard := range shards {
		manifest, err := s.Load(ctx, shard)
		if err != nil {
			return m.Manifest{}, fmt.Errorf("shard %s: %w", shard, err)
		}

		for _, entry := range manifest.Entries {
			if seen[entry.ID] {
				slog.Warn("duplicate record across shards", "id", entry.ID, "shard", shard)
				continue
			}

			seen[entry.ID] = true

			text, err := s.Read(ctx, shard, entry)
			if err != nil {
				return m.Manifest{}, err
			}

			if err := s.fs.WriteFile(ctx, s.fs.JoinPath(ctx, string(root), filepath.FromSlash(entry.Path)), []byte(text), 0o600); err != nil {
				return m.Manifest{}, fmt.Errorf("write snippet %s: %w", entry.ID, err)
			}

			merged.Entries = append(merged.Entries, entry)
		}

		slog.Debug("merged shard", "shard", shard, "entries", len(manifest.Entries))
	}

	sort.SliceStable(merged.Entries, func(i, j int) bool { return merged.Entries[i].ID < merged.Entries[j].ID })

	if err := s.writeManifest(ctx, root, merged); err != nil {
		return m.Manifest{}, err
	}

	return merged, nil
}
