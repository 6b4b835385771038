package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"tentsandtrees/pkg/game/i18n"
)

// markupPattern matches FUNC{operand} spans such as GT{WELCOME} or ACTION{space}
var markupPattern = regexp.MustCompile(`([A-Z_]+){([a-z A-Z0-9_,:?./\-]+)}`)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys are looked up dynamically from markup.
var dynamicGet = i18n.T

// ExpandMarkup formats msg with args and replaces markup spans:
//
//	GT{KEY}       translated message
//	ACTION{key}   a key binding, first letter emphasised
//	TREE{text}    styled as a tree
//	TENT{text}    styled as a tent
//	SUBTLE{text}  de-emphasised
//	DENIED{text}  an error
//
// Unknown functions are left as written. style is applied to every span;
// pass Plain to drop styling.
func ExpandMarkup(style func(text string, s TextStyle) string, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	return markupPattern.ReplaceAllStringFunc(ret, func(span string) string {
		match := markupPattern.FindStringSubmatch(span)
		function, operand := match[1], match[2]

		switch function {
		case "GT":
			return dynamicGet(operand)
		case "ACTION":
			return style(operand[0:1], StyleActionShort) + style(operand[1:], StyleAction)
		case "TREE":
			return style(operand, StyleTree)
		case "TENT":
			return style(operand, StyleTent)
		case "SUBTLE":
			return style(operand, StyleSubtle)
		case "DENIED":
			return style(operand, StyleDenied)
		default:
			return span
		}
	})
}

// Plain is a style function that leaves text unchanged
func Plain(text string, _ TextStyle) string {
	return text
}

// ApplyMarkup formats a message with the current renderer's markup,
// or without styling if no renderer is active
func ApplyMarkup(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return ExpandMarkup(Plain, msg, args...)
}

// StripANSI removes ANSI escape codes from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
