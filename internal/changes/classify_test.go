package changes

import "testing"

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"package-lock.json", true},
		{"web/package-lock.json", true},
		{"node_modules/react/index.js", true},
		{"src/vendor/lib.go", true},
		{"app.min.js", true},
		{"styles/site.min.css", true},
		{"npm-debug.log.1", true},
		{"server.log", true},
		{"notes.txt~", true},
		{".DS_Store", true},
		{"module.iml", true},
		{"src/a.ts", false},
		{"README.md", false},
		{"distribution/main.go", false},
		{"Package-lock.json", false},
		{"yarn.lock.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsExcluded(tt.path); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// TestIsExcludedSlashPatterns documents that patterns holding a '/' never
// match, since only the base name is compared.
func TestIsExcludedSlashPatterns(t *testing.T) {
	if IsExcluded("settings.json") {
		t.Error("settings.json should not be excluded")
	}
	if IsExcluded("workspace.xml") {
		t.Error("workspace.xml should not be excluded")
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"src/a.ts", "ts"},
		{"src/App.TSX", "tsx"},
		{"archive.tar.gz", "gz"},
		{"Makefile", ""},
		{".gitignore", "gitignore"},
		{"dir.d/Makefile", ""},
	}

	for _, tt := range tests {
		if got := Extension(tt.path); got != tt.want {
			t.Errorf("Extension(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDescribeType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "Go"},
		{"a.ts", "TypeScript"},
		{"Component.tsx", "React TypeScript"},
		{"config.YAML", "YAML"},
		{".gitignore", "Git config"},
		{"data.parquet", "parquet file"},
		{"LICENSE", "file"},
	}

	for _, tt := range tests {
		if got := DescribeType(tt.path); got != tt.want {
			t.Errorf("DescribeType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNounForExtension(t *testing.T) {
	tests := map[string]string{
		"ts":   "TypeScript",
		"css":  "styles",
		"scss": "Sass styles",
		"md":   "docs",
		"json": "config",
		"yml":  "config",
		"rs":   "",
		"":     "",
	}

	for ext, want := range tests {
		if got := NounForExtension(ext); got != want {
			t.Errorf("NounForExtension(%q) = %q, want %q", ext, got, want)
		}
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"src/a.ts":        "a",
		"archive.tar.gz":  "archive.tar",
		"Makefile":        "Makefile",
		".gitignore":      ".gitignore",
		"docs/guide.md":   "guide",
		"nested/dir/x.go": "x",
	}

	for in, want := range tests {
		if got := BaseName(in); got != want {
			t.Errorf("BaseName(%q) = %q, want %q", in, got, want)
		}
	}
}
