// Package devicedesc reads chip description files: the registers, pins and
// interrupt vectors of a device, as consumed by the avr packages.
package devicedesc

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses device descriptions.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new description parser
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a description from r. name is used in error positions.
func (p *Parser) Parse(name string, r io.Reader) (*File, error) {
	f, err := p.parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a description held in memory.
func (p *Parser) ParseString(name, input string) (*File, error) {
	f, err := p.parser.ParseString(name, input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses the description at path.
func (p *Parser) ParseFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(path, file)
}

// LoadFile parses and validates the description at path.
func LoadFile(path string) (*Device, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadString parses and validates a description held in memory.
func LoadString(name, input string) (*Device, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseString(name, input)
	if err != nil {
		return nil, err
	}
	return Build(f)
}
