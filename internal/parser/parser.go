package parser

import (
	"fmt"
	"io"

	"github.com/lgbarn/schackmotor-go/internal/errors"
)

// Script is one sequence of moves to replay, with the tags that set it up.
type Script struct {
	// Name identifies the source, usually a file name.
	Name string

	// Number is the 1-based position of the script in its source.
	Number int

	Tags      map[string]string
	Moves     []ScriptMove
	Comments  []string
	Result    string
	StartLine uint
	EndLine   uint
}

// ScriptMove is a move with its source position.
type ScriptMove struct {
	Text   string
	Line   uint
	Column uint
}

// Tag returns the value of a tag, or "" if absent.
func (s *Script) Tag(name string) string {
	return s.Tags[name]
}

// MoveTexts returns the text of every move in order.
func (s *Script) MoveTexts() []string {
	texts := make([]string, len(s.Moves))
	for i, m := range s.Moves {
		texts[i] = m.Text
	}
	return texts
}

// Parser parses move script input into Script structures.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	name         string
	count        int
}

// NewParser creates a new parser for the given reader. name labels the
// scripts and errors it produces.
func NewParser(r io.Reader, name string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		name:  name,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseScript parses a single script from the input.
// Returns nil if no more scripts are available.
func (p *Parser) ParseScript() (*Script, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	script := &Script{
		Name:      p.name,
		Tags:      make(map[string]string),
		StartLine: p.currentToken.Line,
	}

	// Tags come first
	for p.currentToken.Type == TagToken || p.currentToken.Type == CommentToken {
		if err := p.collect(script); err != nil {
			return nil, err
		}
	}

	for {
		switch p.currentToken.Type {
		case EOFToken:
			script.EndLine = p.lexer.LineNumber()
			if len(script.Moves) == 0 && len(script.Tags) == 0 {
				return nil, nil
			}
			return p.finish(script), nil
		case TerminatingResult:
			script.Result = p.currentToken.TokenString
			script.EndLine = p.currentToken.Line
			p.nextToken()
			return p.finish(script), nil
		case TagToken:
			// A new tag section starts the next script.
			script.EndLine = p.currentToken.Line
			return p.finish(script), nil
		case ErrorToken:
			return nil, p.errorf(p.currentToken, "%s", p.currentToken.TokenString)
		case MoveToken:
			script.Moves = append(script.Moves, ScriptMove{
				Text:   p.currentToken.TokenString,
				Line:   p.currentToken.Line,
				Column: p.currentToken.Column,
			})
			p.nextToken()
		default:
			if err := p.collect(script); err != nil {
				return nil, err
			}
		}
	}
}

// collect consumes a tag, comment or move number into the script.
func (p *Parser) collect(script *Script) error {
	tok := p.currentToken
	switch tok.Type {
	case TagToken:
		script.Tags[tok.TokenString] = tok.TagValue
	case CommentToken:
		script.Comments = append(script.Comments, tok.TokenString)
	case MoveNumber:
	case ErrorToken:
		return p.errorf(tok, "%s", tok.TokenString)
	}
	p.nextToken()
	return nil
}

func (p *Parser) finish(script *Script) *Script {
	p.count++
	script.Number = p.count
	return script
}

// errorf builds a ScriptError located at tok.
func (p *Parser) errorf(tok *Token, format string, args ...interface{}) error {
	return &errors.ScriptError{
		Err:    fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidScript),
		File:   p.name,
		Script: p.count + 1,
		Line:   int(tok.Line),
	}
}

// ParseAllScripts parses all scripts from the input.
func (p *Parser) ParseAllScripts() ([]*Script, error) {
	var scripts []*Script
	for {
		script, err := p.ParseScript()
		if err != nil {
			return scripts, err
		}
		if script == nil {
			break
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}
