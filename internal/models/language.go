package models

import (
	"path/filepath"
	"strings"
)

// Language is the closed set of file kinds lion knows how to template,
// inject into and run. The zero value is LanguageUnknown.
type Language int

const (
	LanguageUnknown Language = iota
	LanguageC
	LanguageCpp
	LanguageRust
	LanguageGo
	LanguageJava
	LanguagePython
)

// Kind tells whether a language goes through a compile step before it runs.
type Kind int

const (
	KindUnknown Kind = iota
	KindCompiled
	KindInterpreted
)

func (k Kind) String() string {
	switch k {
	case KindCompiled:
		return "compiled"
	case KindInterpreted:
		return "interpreted"
	case KindUnknown:
		return "unknown"
	}
	return "unknown"
}

// InjectionStyle selects how a dependency declaration is added for a language.
type InjectionStyle int

const (
	// InjectionNone means the language has no injection strategy.
	InjectionNone InjectionStyle = iota
	// InjectionImportLine prepends an import statement to the source file.
	InjectionImportLine
	// InjectionIncludeLine prepends an #include directive to the source file.
	InjectionIncludeLine
	// InjectionManifest records the dependency in a project manifest.
	InjectionManifest
)

// languageInfo is the static descriptor attached to every Language.
type languageInfo struct {
	name      string
	display   string
	extension string
	kind      Kind
	injection InjectionStyle
}

var languageTable = map[Language]languageInfo{
	LanguageUnknown: {name: "unknown", display: "Unknown", extension: "", kind: KindUnknown, injection: InjectionNone},
	LanguageC:       {name: "c", display: "C", extension: "c", kind: KindCompiled, injection: InjectionNone},
	LanguageCpp:     {name: "cpp", display: "C++", extension: "cpp", kind: KindCompiled, injection: InjectionIncludeLine},
	LanguageRust:    {name: "rust", display: "Rust", extension: "rs", kind: KindCompiled, injection: InjectionManifest},
	LanguageGo:      {name: "go", display: "Go", extension: "go", kind: KindCompiled, injection: InjectionNone},
	LanguageJava:    {name: "java", display: "Java", extension: "java", kind: KindCompiled, injection: InjectionNone},
	LanguagePython:  {name: "python", display: "Python", extension: "py", kind: KindInterpreted, injection: InjectionImportLine},
}

// All returns every supported language in a stable order. LanguageUnknown
// is not included.
func All() []Language {
	return []Language{
		LanguageC,
		LanguageCpp,
		LanguageRust,
		LanguageGo,
		LanguageJava,
		LanguagePython,
	}
}

// Resolve maps a file extension ("py" or ".py") to a Language. Matching is
// case-insensitive and never fails: anything unrecognized is LanguageUnknown.
func Resolve(extension string) Language {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))
	if ext == "" {
		return LanguageUnknown
	}

	for _, lang := range All() {
		if languageTable[lang].extension == ext {
			return lang
		}
	}
	return LanguageUnknown
}

// ResolveFile resolves the language of a file name from its extension.
func ResolveFile(name string) Language {
	return Resolve(filepath.Ext(name))
}

// ParseLanguage looks a language up by its short name ("rust") or by its
// extension ("rs").
func ParseLanguage(s string) Language {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, lang := range All() {
		if languageTable[lang].name == needle {
			return lang
		}
	}
	return Resolve(needle)
}

func (l Language) info() languageInfo {
	if info, ok := languageTable[l]; ok {
		return info
	}
	return languageTable[LanguageUnknown]
}

// String returns the short, lowercase language name.
func (l Language) String() string { return l.info().name }

// DisplayName returns the human readable language name.
func (l Language) DisplayName() string { return l.info().display }

// Extension returns the canonical extension without the leading dot.
func (l Language) Extension() string { return l.info().extension }

// Kind reports whether the language is compiled or interpreted.
func (l Language) Kind() Kind { return l.info().kind }

// Injection returns the dependency injection style of the language.
func (l Language) Injection() InjectionStyle { return l.info().injection }

// IsKnown reports whether l is one of the supported languages.
func (l Language) IsKnown() bool { return l != LanguageUnknown && l.info().kind != KindUnknown }

// FileName returns base with the language's canonical extension appended.
func (l Language) FileName(base string) string {
	if !l.IsKnown() {
		return base
	}
	return base + "." + l.Extension()
}
