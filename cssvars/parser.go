package cssvars

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseStylesheet lexes CSS content and returns every custom property
// declaration. Selector context is ignored: a variable declared under any
// rule is one token.
func ParseStylesheet(content, filename string) []Variable {
	lexer := css.NewLexer(parse.NewInputString(content))

	var variables []Variable
	var currentName string
	var currentVal []string

	save := func() {
		if currentName != "" && len(currentVal) > 0 {
			value := strings.TrimSpace(strings.Join(currentVal, ""))
			if value != "" {
				variables = append(variables, Variable{
					Name:       currentName,
					Value:      value,
					SourceFile: filename,
				})
			}
		}
		currentName = ""
		currentVal = nil
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - save last declaration and break
			save()
			break
		}

		switch {
		case tt == css.CustomPropertyNameToken:
			save()
			currentName = strings.TrimPrefix(string(text), "--")
		case tt == css.ColonToken && currentName != "" && currentVal == nil:
			// Separator between name and value
			continue
		case tt == css.SemicolonToken || tt == css.RightBraceToken:
			// End of declaration
			save()
		case tt == css.CommentToken:
			// Comments inside a value are dropped
		case tt == css.WhitespaceToken && len(currentVal) == 0:
			// Leading whitespace before the value
		case currentName != "":
			// Part of the value, whitespace included
			currentVal = append(currentVal, string(text))
		}
	}

	return variables
}

// parseStylesheetFile reads and parses a single stylesheet
func parseStylesheetFile(path string) ([]Variable, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return ParseStylesheet(string(content), path), nil
}
