// Package forward hands the user's command line to the wrapped package
// manager and reports the exit status it finished with.
package forward

import (
	"errors"
	"strings"
)

// Split breaks a configured command line such as "corepack pnpm" into argv.
// Single quotes, double quotes and backslash escapes group words the way a
// POSIX shell does; the quotes themselves are removed. Nothing else is
// interpreted: there is no expansion, globbing or operator handling.
func Split(command string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inToken := false
	inSingle := false
	inDouble := false
	escaped := false

	for i := 0; i < len(command); i++ {
		ch := command[i]
		if escaped {
			current.WriteByte(ch)
			escaped = false
			continue
		}
		if ch == '\\' && !inSingle {
			inToken = true
			if !inDouble {
				escaped = true
				continue
			}
			// Inside double quotes only \" and \\ are escapes.
			if i+1 < len(command) && (command[i+1] == '"' || command[i+1] == '\\') {
				current.WriteByte(command[i+1])
				i++
				continue
			}
			current.WriteByte(ch)
			continue
		}
		if ch == '\'' && !inDouble {
			inSingle = !inSingle
			inToken = true
			continue
		}
		if ch == '"' && !inSingle {
			inDouble = !inDouble
			inToken = true
			continue
		}
		if (ch == ' ' || ch == '\t' || ch == '\n') && !inSingle && !inDouble {
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
			continue
		}
		current.WriteByte(ch)
		inToken = true
	}

	switch {
	case inSingle || inDouble:
		return nil, errors.New("unterminated quote in command")
	case escaped:
		return nil, errors.New("trailing backslash in command")
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	if len(tokens) == 0 {
		return nil, errors.New("empty command")
	}
	return tokens, nil
}
