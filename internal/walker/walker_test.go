package walker

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeFiles creates each relative path under dir with the given content.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalk_BasicTraversal(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"news/2023/leave.html": "<p>Paid leave</p>",
		"news/wage.htm":        "<p>Minimum wage</p>",
		"notes.txt":            "Union dues",
		"blog/post.md":         "# Post",
		"style.css":            "body {}",
	})

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{"blog/post.md", "news/2023/leave.html", "news/wage.htm", "notes.txt"}
	if got := relPaths(files); !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_FileInfoFields(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"a/article.html": "<p>hello</p>"})

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}

	f := files[0]
	if !filepath.IsAbs(f.Path) {
		t.Errorf("Path should be absolute, got %q", f.Path)
	}
	if f.RelPath != "a/article.html" {
		t.Errorf("RelPath = %q", f.RelPath)
	}
	if f.Size != int64(len("<p>hello</p>")) {
		t.Errorf("Size = %d", f.Size)
	}
	if f.Format != FormatHTML {
		t.Errorf("Format = %q, want html", f.Format)
	}
	if len(f.ContentHash) != 64 {
		t.Errorf("ContentHash should be 64 hex chars, got %d", len(f.ContentHash))
	}
}

func TestWalk_IncludeFilter(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.html": "<p>a</p>",
		"b.txt":  "b",
	})

	files, err := Walk(WalkerConfig{RootDir: tmpDir, Include: []string{"*.txt"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); !reflect.DeepEqual(got, []string{"b.txt"}) {
		t.Errorf("Walk() = %v, want [b.txt]", got)
	}
}

func TestWalk_ExcludeFilter(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"keep/a.html":   "<p>a</p>",
		"drafts/b.html": "<p>b</p>",
	})

	files, err := Walk(WalkerConfig{RootDir: tmpDir, Exclude: []string{"drafts/**"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); !reflect.DeepEqual(got, []string{"keep/a.html"}) {
		t.Errorf("Walk() = %v, want [keep/a.html]", got)
	}
}

func TestWalk_DoubleStarInclude(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"site/deep/nested/a.html": "<p>a</p>",
		"other/b.html":            "<p>b</p>",
	})

	files, err := Walk(WalkerConfig{RootDir: tmpDir, Include: []string{"site/**/*.html"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); !reflect.DeepEqual(got, []string{"site/deep/nested/a.html"}) {
		t.Errorf("Walk() = %v", got)
	}
}

func TestWalk_SkipsBinaryFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"readme.txt": "Hello"})

	// Binary content behind a text extension.
	binary := make([]byte, 100)
	binary[50] = 0x00
	os.WriteFile(filepath.Join(tmpDir, "image.txt"), binary, 0644)

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); !reflect.DeepEqual(got, []string{"readme.txt"}) {
		t.Errorf("Walk() = %v, want [readme.txt]", got)
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"small.txt": "small"})

	big := make([]byte, 200)
	for i := range big {
		big[i] = 'A'
	}
	os.WriteFile(filepath.Join(tmpDir, "big.txt"), big, 0644)

	files, err := Walk(WalkerConfig{RootDir: tmpDir, MaxFileSize: 100})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, f := range files {
		if f.RelPath == "big.txt" {
			t.Error("big.txt should have been skipped (exceeds MaxFileSize)")
		}
	}
}

func TestWalk_DefaultExcludeDirs(t *testing.T) {
	tmpDir := t.TempDir()
	for _, dir := range []string{"node_modules", ".git", "assets", "__pycache__"} {
		writeFiles(t, tmpDir, map[string]string{dir + "/file.html": "<p>" + dir + "</p>"})
	}
	writeFiles(t, tmpDir, map[string]string{"article.html": "<p>article</p>"})

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); !reflect.DeepEqual(got, []string{"article.html"}) {
		t.Errorf("Walk() = %v, want [article.html]", got)
	}
}

func TestWalk_Gitignore(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		".gitignore":         "*.txt\nraw/\n",
		"article.html":       "<p>keep</p>",
		"notes.txt":          "ignored",
		"raw/download.html":  "<p>ignored</p>",
		"rawhtml/other.html": "<p>kept</p>",
	})

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	want := []string{"article.html", "rawhtml/other.html"}
	if got := relPaths(files); !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_DuplicateContent(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a/copy.html": "<p>same</p>",
		"b/copy.html": "<p>same</p>",
	})

	files, err := Walk(WalkerConfig{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); !reflect.DeepEqual(got, []string{"a/copy.html"}) {
		t.Errorf("Walk() = %v, want [a/copy.html]", got)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	if _, err := Walk(WalkerConfig{RootDir: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.html":         FormatHTML,
		"A.HTM":          FormatHTML,
		"dir/page.xhtml": FormatHTML,
		"post.md":        FormatMarkdown,
		"post.markdown":  FormatMarkdown,
		"notes.txt":      FormatText,
		"style.css":      FormatUnknown,
		"Makefile":       FormatUnknown,
	}
	for name, want := range tests {
		if got := DetectFormat(name); got != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestMatchesInclude_Empty(t *testing.T) {
	if !MatchesInclude("anything.html", nil) {
		t.Error("empty include patterns should match everything")
	}
}

func TestMatchesInclude_Pattern(t *testing.T) {
	if !MatchesInclude("news/a.html", []string{"**/*.html"}) {
		t.Error("expected **/*.html to match news/a.html")
	}
	if MatchesInclude("news/a.txt", []string{"**/*.html"}) {
		t.Error("expected **/*.html not to match news/a.txt")
	}
}

func TestMatchesExclude_Empty(t *testing.T) {
	if MatchesExclude("anything.html", nil) {
		t.Error("empty exclude patterns should match nothing")
	}
}

func TestMatchesExclude_BaseName(t *testing.T) {
	if !MatchesExclude("deep/dir/sitemap.html", []string{"sitemap.html"}) {
		t.Error("expected a bare file name pattern to match at any depth")
	}
}
