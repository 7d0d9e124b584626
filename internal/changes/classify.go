package changes

import (
	"path"
	"regexp"
	"strings"
)

// ExcludedDirectories are path segments that mark a file as generated or
// vendored. A path is excluded when any of its segments equals one of these.
var ExcludedDirectories = []string{
	"node_modules",
	"dist",
	"build",
	"out",
	"target",
	".git",
	".svn",
	".hg",
	"__pycache__",
	".pytest_cache",
	".coverage",
	"coverage",
	".nyc_output",
	"vendor",
	"bower_components",
}

// ExcludedFilePatterns are matched against the base name of a path.
// A '*' matches any run of characters; everything else is literal.
var ExcludedFilePatterns = []string{
	// lock files
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"composer.lock",
	"Gemfile.lock",
	"Pipfile.lock",
	"poetry.lock",

	// build output
	"*.min.js",
	"*.min.css",
	"*.bundle.js",
	"*.bundle.css",

	// logs
	"*.log",
	"npm-debug.log*",
	"yarn-debug.log*",
	"yarn-error.log*",

	// editor and temp files
	"*.tmp",
	"*.temp",
	"*.swp",
	"*.swo",
	"*~",

	// OS metadata
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",

	// IDE settings
	".vscode/settings.json",
	".idea/workspace.xml",
	"*.iml",
}

// fileType is one row of the shared extension table. Label is used in the
// change report; Noun is the short word the fallback message uses and is
// empty when the fallback should fall back to its generic noun.
type fileType struct {
	Label string
	Noun  string
}

var fileTypes = map[string]fileType{
	"js":           {"JavaScript", "JavaScript"},
	"ts":           {"TypeScript", "TypeScript"},
	"jsx":          {"React", "React"},
	"tsx":          {"React TypeScript", "React TypeScript"},
	"css":          {"CSS", "styles"},
	"scss":         {"SCSS", "Sass styles"},
	"sass":         {"Sass", ""},
	"html":         {"HTML", "HTML"},
	"md":           {"Markdown", "docs"},
	"json":         {"JSON", "config"},
	"yml":          {"YAML", "config"},
	"yaml":         {"YAML", "config"},
	"py":           {"Python", "Python"},
	"rb":           {"Ruby", "Ruby"},
	"go":           {"Go", "Go"},
	"java":         {"Java", "Java"},
	"php":          {"PHP", "PHP"},
	"c":            {"C", ""},
	"cpp":          {"C++", ""},
	"h":            {"C/C++ header", ""},
	"cs":           {"C#", ""},
	"rs":           {"Rust", ""},
	"swift":        {"Swift", ""},
	"kt":           {"Kotlin", ""},
	"sql":          {"SQL", ""},
	"sh":           {"Shell", ""},
	"bat":          {"Batch", ""},
	"ps1":          {"PowerShell", ""},
	"gitignore":    {"Git config", ""},
	"dockerignore": {"Docker config", ""},
	"dockerfile":   {"Dockerfile", ""},
	"xml":          {"XML", ""},
	"svg":          {"SVG", ""},
	"txt":          {"Text", ""},
}

var excludedNamePatterns = compilePatterns(ExcludedFilePatterns)

func compilePatterns(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		parts := strings.Split(p, "*")
		for i := range parts {
			parts[i] = regexp.QuoteMeta(parts[i])
		}
		out = append(out, regexp.MustCompile("^"+strings.Join(parts, ".*")+"$"))
	}
	return out
}

// IsExcluded reports whether path should be left out of the change report.
// Paths use forward slashes, as git prints them.
func IsExcluded(p string) bool {
	for _, segment := range strings.Split(p, "/") {
		for _, dir := range ExcludedDirectories {
			if segment == dir {
				return true
			}
		}
	}

	name := path.Base(p)
	for _, re := range excludedNamePatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Extension returns the lowercased text after the last '.' of the base name,
// or "" when the name has no dot.
func Extension(p string) string {
	name := path.Base(p)
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// DescribeType returns a human-readable label for the file's type.
func DescribeType(p string) string {
	return labelForExtension(Extension(p))
}

func labelForExtension(ext string) string {
	if ft, ok := fileTypes[ext]; ok {
		return ft.Label
	}
	if ext == "" {
		return "file"
	}
	return ext + " file"
}

// NounForExtension returns the short noun used in heuristic commit messages,
// or "" when the extension has none.
func NounForExtension(ext string) string {
	return fileTypes[ext].Noun
}

// BaseName returns the file name without directory and without extension.
// Names that would become empty (".gitignore") are returned unchanged.
func BaseName(p string) string {
	name := path.Base(p)
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name
	}
	return name[:idx]
}
