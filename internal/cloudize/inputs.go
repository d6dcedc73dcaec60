package cloudize

import (
	"path"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
)

// FilePath pairs a local file with the bucket key it uploads to.
type FilePath struct {
	Local string
	Cloud string // set by PlanCloudPaths
}

// FileInput is one File-typed entry discovered in an inputs document.
type FileInput struct {
	// InputPath locates the entry in the document: string keys and int
	// sequence indices from the root.
	InputPath []any
	File      *FilePath
	Secondary []*FilePath
}

// AllPaths lists the primary file and its secondary files.
func (f *FileInput) AllPaths() []*FilePath {
	return append([]*FilePath{f.File}, f.Secondary...)
}

// FindFileInputs walks the inputs document and collects every File input:
// mappings declaring class File, and strings that resolve to an existing
// local file relative to the inputs file's directory.
func FindFileInputs(fs billy.Filesystem, w *Workflow) []FileInput {
	baseDir := filepath.Dir(w.InputsPath)
	var found []FileInput

	walkValue(w.Inputs, nil, func(node any, nodePath []any) {
		if !isFileInput(fs, node, inputName(nodePath), baseDir) {
			return
		}
		local := ExpandRelative(localPath(node), baseDir)
		in := FileInput{InputPath: nodePath, File: &FilePath{Local: local}}
		for _, suffix := range w.SecondarySuffixes(inputName(nodePath)) {
			in.Secondary = append(in.Secondary, &FilePath{Local: SecondaryPath(local, suffix)})
		}
		found = append(found, in)
	})
	return found
}

// PlanCloudPaths assigns each file a bucket key under prefix, preserving the
// layout relative to the deepest directory all files share.
func PlanCloudPaths(files []FileInput, prefix string) {
	var all []string
	for _, f := range files {
		for _, fp := range f.AllPaths() {
			all = append(all, fp.Local)
		}
	}
	ancestor := DeepestSharedAncestor(all)
	for _, f := range files {
		for _, fp := range f.AllPaths() {
			fp.Cloud = path.Join(prefix, StripAncestor(fp.Local, ancestor))
		}
	}
}

// CloudizeInputs returns a copy of the inputs document with every File entry
// replaced by its gs:// locator. The original document is left untouched.
func CloudizeInputs(inputs map[string]any, bucket string, files []FileInput) map[string]any {
	out := deepCopy(inputs).(map[string]any)
	for _, f := range files {
		setIn(out, f.InputPath, RemoteURI(bucket, f.File.Cloud))
	}
	return out
}

// walkValue visits every node of a decoded YAML/JSON value, children before
// parents, handing fn the node and its path from the root.
func walkValue(v any, nodePath []any, fn func(node any, nodePath []any)) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := append(append([]any(nil), nodePath...), k)
			walkValue(t[k], child, fn)
		}
	case []any:
		for i, elem := range t {
			child := append(append([]any(nil), nodePath...), i)
			walkValue(elem, child, fn)
		}
	}
	fn(v, nodePath)
}

// inputName names the input an entry belongs to; sequence members take the
// enclosing key.
func inputName(nodePath []any) string {
	for i := len(nodePath) - 1; i >= 0; i-- {
		if s, ok := nodePath[i].(string); ok {
			return s
		}
	}
	return ""
}

func isFileInput(fs billy.Filesystem, node any, parent, baseDir string) bool {
	switch t := node.(type) {
	case map[string]any:
		return t["class"] == "File"
	case string:
		// A path entry inside a File object is handled with its parent.
		if parent == "path" {
			return false
		}
		_, err := fs.Stat(ExpandRelative(t, baseDir))
		return err == nil
	default:
		return false
	}
}

// localPath extracts the filesystem path of a File node, which is either a
// plain string or a mapping with a path entry.
func localPath(node any) string {
	if m, ok := node.(map[string]any); ok {
		p, _ := m["path"].(string)
		return p
	}
	s, _ := node.(string)
	return s
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, c := range t {
			m[k] = deepCopy(c)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, c := range t {
			s[i] = deepCopy(c)
		}
		return s
	default:
		return v
	}
}

// setIn replaces the value at nodePath inside a document of nested
// map[string]any and []any values.
func setIn(coll any, nodePath []any, val any) {
	for i, step := range nodePath {
		last := i == len(nodePath)-1
		switch key := step.(type) {
		case string:
			m, ok := coll.(map[string]any)
			if !ok {
				return
			}
			if last {
				m[key] = val
			} else {
				coll = m[key]
			}
		case int:
			s, ok := coll.([]any)
			if !ok || key >= len(s) {
				return
			}
			if last {
				s[key] = val
			} else {
				coll = s[key]
			}
		}
	}
}
