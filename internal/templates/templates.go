// Package templates holds the hello-world bodies written by `lion new`.
package templates

import (
	"fmt"

	"github.com/jakoblorz/lion/internal/models"
)

const (
	cTemplate = "#include <stdio.h>\n\nint main() {\n    printf(\"Hello Lion!\");\n    return 0;\n}"

	cppTemplate = "#include <iostream>\n\nint main() {\n    std::cout << \"Hello, Lion!\" << std::endl;\n    return 0;\n}"

	rustTemplate = "fn main() {\n    println!(\"Hello Lion!\");\n}"

	goTemplate = "package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello Lion!\")\n}"

	javaTemplate = "public class Main {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, Lion!\");\n    }\n}"

	pythonTemplate = "print(\"Hello Lion!\")"
)

// For returns the template for lang. LanguageUnknown yields
// models.ErrUnsupportedLanguage: an unknown file type is never written.
func For(lang models.Language) (string, error) {
	switch lang {
	case models.LanguageC:
		return cTemplate, nil
	case models.LanguageCpp:
		return cppTemplate, nil
	case models.LanguageRust:
		return rustTemplate, nil
	case models.LanguageGo:
		return goTemplate, nil
	case models.LanguageJava:
		return javaTemplate, nil
	case models.LanguagePython:
		return pythonTemplate, nil
	case models.LanguageUnknown:
		return "", models.ErrUnsupportedLanguage
	}
	return "", fmt.Errorf("%w: language %d", models.ErrUnsupportedLanguage, int(lang))
}

// MustFor is For for languages known to be supported.
func MustFor(lang models.Language) string {
	body, err := For(lang)
	if err != nil {
		panic(err)
	}
	return body
}
