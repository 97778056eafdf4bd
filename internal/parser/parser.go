// Package parser loads JSON text into a node tree by recursive descent.
// The grammar is LL(1): each production dispatches on a single peeked byte
// and never backtracks. Any violation fails immediately with a parsing
// error; there is no recovery and no partial result.
package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/node"
)

// Parse reads exactly one JSON value from reader and returns it wrapped in
// a Document. The reader is left positioned just past the root value's
// closing token; trailing content is not validated.
func Parse(reader io.Reader) (node.Document, error) {
	src := newSource(reader)
	root, err := parseValue(src)
	if err != nil {
		return node.Document{}, err
	}
	return node.NewDocument(root), nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (node.Document, error) {
	if strings.TrimSpace(jsonString) == "" {
		return node.Document{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (node.Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return node.Document{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return node.Document{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return node.Document{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return node.Document{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return node.Document{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}

// parseValue is the entry production: it skips whitespace, peeks one byte
// and dispatches to the production for that value shape.
func parseValue(src *source) (node.Node, error) {
	if err := src.skipWhitespace(); err != nil {
		return node.Node{}, err
	}
	c, err := src.peek()
	if err != nil {
		return node.Node{}, eofError(err)
	}

	switch {
	case c == '[':
		return parseArray(src)
	case c == '{':
		return parseObject(src)
	case c == '"':
		return parseString(src)
	case isDigit(c) || c == '-':
		return parseNumber(src)
	case isAlpha(c):
		return parseLiteral(src)
	default:
		return node.Node{}, errors.NewParsingError(
			fmt.Sprintf("unexpected character %q", c),
			errors.ErrInvalidJSON,
		)
	}
}

// parseArray consumes "[", then elements separated by commas, then "]".
func parseArray(src *source) (node.Node, error) {
	if err := expect(src, '['); err != nil {
		return node.Node{}, err
	}

	var result node.Array

	if err := src.skipWhitespace(); err != nil {
		return node.Node{}, err
	}
	c, err := src.peek()
	if err != nil {
		return node.Node{}, eofError(err)
	}
	if c == ']' {
		src.next()
		return node.NewArray(result), nil
	}

	for {
		element, err := parseValue(src)
		if err != nil {
			return node.Node{}, err
		}
		result = append(result, element)

		if err := src.skipWhitespace(); err != nil {
			return node.Node{}, err
		}
		c, err := src.next()
		if err != nil {
			return node.Node{}, eofError(err)
		}
		if c == ']' {
			break
		}
		if c != ',' {
			return node.Node{}, errors.NewParsingError(
				fmt.Sprintf("expected ',' or ']' in array, found %q", c),
				errors.ErrInvalidJSON,
			)
		}
	}

	return node.NewArray(result), nil
}

// parseObject consumes "{", then quoted-key/colon/value entries separated
// by commas, then "}". A repeated key overwrites the earlier entry, so the
// last occurrence wins.
func parseObject(src *source) (node.Node, error) {
	if err := expect(src, '{'); err != nil {
		return node.Node{}, err
	}

	result := node.Object{}

	if err := src.skipWhitespace(); err != nil {
		return node.Node{}, err
	}
	c, err := src.peek()
	if err != nil {
		return node.Node{}, eofError(err)
	}
	if c == '}' {
		src.next()
		return node.NewObject(result), nil
	}

	for {
		if err := src.skipWhitespace(); err != nil {
			return node.Node{}, err
		}
		c, err := src.next()
		if err != nil {
			return node.Node{}, eofError(err)
		}
		if c != '"' {
			return node.Node{}, errors.NewParsingError(
				fmt.Sprintf("object key should start with '\"', found %q", c),
				errors.ErrInvalidJSON,
			)
		}
		key, err := parseStringToken(src)
		if err != nil {
			return node.Node{}, err
		}

		if err := src.skipWhitespace(); err != nil {
			return node.Node{}, err
		}
		c, err = src.next()
		if err != nil {
			return node.Node{}, eofError(err)
		}
		if c != ':' {
			return node.Node{}, errors.NewParsingError(
				fmt.Sprintf("expected ':' after object key, found %q", c),
				errors.ErrInvalidJSON,
			)
		}

		value, err := parseValue(src)
		if err != nil {
			return node.Node{}, err
		}
		result[key] = value

		if err := src.skipWhitespace(); err != nil {
			return node.Node{}, err
		}
		c, err = src.next()
		if err != nil {
			return node.Node{}, eofError(err)
		}
		if c == '}' {
			break
		}
		if c != ',' {
			return node.Node{}, errors.NewParsingError(
				fmt.Sprintf("expected ',' or '}' in object, found %q", c),
				errors.ErrInvalidJSON,
			)
		}
	}

	return node.NewObject(result), nil
}

// parseString consumes the opening quote and the quoted content.
func parseString(src *source) (node.Node, error) {
	if err := expect(src, '"'); err != nil {
		return node.Node{}, err
	}
	s, err := parseStringToken(src)
	if err != nil {
		return node.Node{}, err
	}
	return node.NewString(s), nil
}

// parseStringToken reads characters up to an unescaped closing quote,
// which is consumed and excluded from the result. Recognized escapes are
// \n \r \t \" and \\; any other escape is a parsing error.
func parseStringToken(src *source) (string, error) {
	var sb strings.Builder
	for {
		c, err := src.next()
		if err != nil {
			return "", eofError(err)
		}

		if c == '"' {
			return sb.String(), nil
		}
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}

		escaped, err := src.next()
		if err != nil {
			return "", eofError(err)
		}
		switch escaped {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			return "", errors.NewParsingError(
				fmt.Sprintf("invalid escape sequence '\\%c'", escaped),
				errors.ErrInvalidJSON,
			)
		}
	}
}

// parseNumber greedily accumulates a numeric lexeme: optional sign, digit
// run, optional fraction, optional exponent. A fraction or exponent marks
// the value as a double; otherwise it is a 32-bit integer.
func parseNumber(src *source) (node.Node, error) {
	var sb strings.Builder
	isDouble := false

	readByte := func() {
		c, err := src.next()
		if err == nil {
			sb.WriteByte(c)
		}
	}
	digits := func() {
		for {
			c, err := src.peek()
			if err != nil || !isDigit(c) {
				return
			}
			readByte()
		}
	}

	if c, err := src.peek(); err == nil && c == '-' {
		readByte()
	}
	digits()

	if c, err := src.peek(); err == nil && c == '.' {
		isDouble = true
		readByte()
		digits()
	}

	if c, err := src.peek(); err == nil && (c == 'e' || c == 'E') {
		isDouble = true
		readByte()
		if c, err := src.peek(); err == nil && (c == '+' || c == '-') {
			readByte()
		}
		digits()
	}

	lexeme := sb.String()
	if isDouble {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return node.Node{}, errors.NewParsingError(
				fmt.Sprintf("invalid number %q", lexeme),
				errors.ErrInvalidJSON,
			)
		}
		return node.NewDouble(value), nil
	}
	value, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		return node.Node{}, errors.NewParsingError(
			fmt.Sprintf("invalid number %q", lexeme),
			errors.ErrInvalidJSON,
		)
	}
	return node.NewInt(int32(value)), nil
}

// parseLiteral consumes a run of alphabetic characters and matches it
// against the three keyword literals.
func parseLiteral(src *source) (node.Node, error) {
	var sb strings.Builder
	for {
		c, err := src.peek()
		if err != nil || !isAlpha(c) {
			break
		}
		src.next()
		sb.WriteByte(c)
	}

	switch token := sb.String(); token {
	case "true":
		return node.NewBool(true), nil
	case "false":
		return node.NewBool(false), nil
	case "null":
		return node.NewNull(), nil
	default:
		return node.Node{}, errors.NewParsingError(
			fmt.Sprintf("unknown token: %s", token),
			errors.ErrInvalidJSON,
		)
	}
}

// expect consumes one byte and fails unless it is want.
func expect(src *source, want byte) error {
	c, err := src.next()
	if err != nil {
		return eofError(err)
	}
	if c != want {
		return errors.NewParsingError(
			fmt.Sprintf("expected %q, found %q", want, c),
			errors.ErrInvalidJSON,
		)
	}
	return nil
}

// eofError converts source exhaustion into a parsing error; any other
// read failure is reported as-is.
func eofError(err error) error {
	if err == io.EOF {
		return errors.NewParsingError("unexpected end of input", errors.ErrUnexpectedEOF)
	}
	return errors.NewInputError("failed to read input", err)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
