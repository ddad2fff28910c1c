package ui

import "strings"

// ParseCSS parses the panel's CSS dialect: ".class" or "#id" selectors with
// "key: value;" declarations. No combinators, no @rules; /* comments */ are
// stripped. Blocks with unsupported selectors are skipped.
func ParseCSS(content string) *Stylesheet {
	sheet := &Stylesheet{}
	content = stripComments(content)
	for {
		open := strings.Index(content, "{")
		if open < 0 {
			return sheet
		}
		closing := strings.Index(content[open:], "}")
		if closing < 0 {
			return sheet
		}
		closing += open
		selector := strings.TrimSpace(content[:open])
		body := content[open+1 : closing]
		content = content[closing+1:]
		if len(selector) < 2 || (selector[0] != '.' && selector[0] != '#') {
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Props: parseDecls(body)})
	}
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "/*")
		if open < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:open])
		end := strings.Index(s[open+2:], "*/")
		if end < 0 {
			return b.String()
		}
		s = s[open+2+end+2:]
	}
}

func parseDecls(body string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(body, ";") {
		k, v, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			props[k] = v
		}
	}
	return props
}
