package graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	language "github.com/graphlink/graphlink/internal/language"
)

// SourceFile is one SDL file of a schema.
type SourceFile struct {
	Name    string
	Content string
}

// Source supplies the SDL files that make up one schema.
type Source interface {
	Files(ctx context.Context) ([]SourceFile, error)
}

// InMemorySource is a Source backed by literal file contents, mainly for
// tests.
type InMemorySource []SourceFile

// Files implements Source.
func (s InMemorySource) Files(ctx context.Context) ([]SourceFile, error) {
	return s, nil
}

// FileSystemSource discovers every .graphql file under a root directory.
type FileSystemSource struct {
	root string
}

// NewFileSystemSource creates a FileSystemSource for the given root.
func NewFileSystemSource(root string) *FileSystemSource {
	return &FileSystemSource{root: root}
}

// Files implements Source. Files are returned in path order so schemas load
// deterministically.
func (s *FileSystemSource) Files(ctx context.Context) ([]SourceFile, error) {
	var files []SourceFile
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".graphql" {
			return nil
		}
		relPath, err := filepath.Rel(s.root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %q: %w", path, err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", path, err)
		}
		files = append(files, SourceFile{Name: relPath, Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root directory %q: %w", s.root, err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// LoadSchema parses every file supplied by src and links them into one
// Schema. Definitions may reference types declared in any file.
func LoadSchema(ctx context.Context, src Source) (*Schema, error) {
	files, err := src.Files(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]*language.SchemaDocument, 0, len(files))
	for _, f := range files {
		doc, err := language.ParseSchema(f.Name, f.Content)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return BuildSchema(ctx, docs...)
}
