package deps

// Language groups the manifest parsers of one ecosystem with the registry
// their packages are looked up in.
type Language struct {
	Name     string   // Language name (e.g., "python")
	Registry string   // Registry identifier (e.g., "pypi")
	Parsers  []Parser // Manifest parsers in detection priority order
}

// Supports reports whether any of the language's parsers handles filename.
func (l *Language) Supports(filename string) bool {
	_, err := DetectManifest(filename, l.Parsers...)
	return err == nil
}

// FindLanguage returns the language owning a parser of the given type.
func FindLanguage(parserType string, languages []*Language) *Language {
	for _, lang := range languages {
		for _, p := range lang.Parsers {
			if p.Type() == parserType {
				return lang
			}
		}
	}
	return nil
}
