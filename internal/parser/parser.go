package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Script is one game read from a move script.
type Script struct {
	Name string
	File string
	// Line is the line on which the script starts.
	Line int
	// Placement is the start placement; empty means the standard one.
	Placement string
	Turn      chess.Colour
	Moves     []ScriptMove
	// Result is the terminating result token, or the Result tag when the
	// moves are not terminated.
	Result string
	Tags   map[string]string
}

// StartPlacement returns the placement the script starts from.
func (s *Script) StartPlacement() string {
	if s.Placement == "" {
		return engine.StartingPlacement
	}
	return s.Placement
}

// Parser parses move script input into Scripts.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	file         string
}

// NewParser creates a new parser for the given reader. file names the
// input in error messages.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		file:  file,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// Next parses the next script. It returns io.EOF when the input is
// exhausted. After an error the parser skips to the next script, so Next
// may be called again.
func (p *Parser) Next() (*Script, error) {
	if p.currentToken == nil {
		p.nextToken()
	}
	p.skipComments()
	if p.currentToken.Type == EOFToken {
		return nil, io.EOF
	}

	script := &Script{
		File: p.file,
		Line: p.currentToken.Line,
		Turn: chess.White,
		Tags: make(map[string]string),
	}

	if err := p.parseOptTagList(script); err != nil {
		p.skipToNextScript()
		return nil, err
	}
	if err := p.parseMoveList(script); err != nil {
		p.skipToNextScript()
		return nil, err
	}
	p.parseResult(script)
	return script, nil
}

// skipComments skips comment tokens.
func (p *Parser) skipComments() {
	for p.currentToken.Type == CommentToken {
		p.nextToken()
	}
}

// skipToNextScript skips tokens up to the next tag list, result or the
// end of input. A result is consumed.
func (p *Parser) skipToNextScript() {
	for {
		switch p.currentToken.Type {
		case EOFToken:
			return
		case TerminatingResult:
			p.nextToken()
			return
		case TagToken:
			return
		default:
			p.nextToken()
		}
	}
}

// parseOptTagList parses zero or more tags.
func (p *Parser) parseOptTagList(script *Script) error {
	for p.currentToken.Type == TagToken {
		if err := p.parseTag(script); err != nil {
			return err
		}
		p.skipComments()
	}
	return nil
}

// parseTag parses a single tag and applies it to the script.
func (p *Parser) parseTag(script *Script) error {
	tag := p.currentToken
	p.nextToken()

	if p.currentToken.Type != StringToken {
		return p.errorAt(p.currentToken, errors.ErrParseFailure, fmt.Sprintf("value for tag %s", tag.TokenString))
	}
	value := p.currentToken.TokenString
	script.Tags[tag.TokenString] = value

	if err := applyTag(script, tag.TokenString, value); err != nil {
		return &errors.ParseError{Err: err, File: p.file, Line: p.currentToken.Line, Column: p.currentToken.Column}
	}
	p.nextToken()
	return nil
}

// applyTag interprets the tags that affect play.
func applyTag(script *Script, name, value string) error {
	switch strings.ToLower(name) {
	case "name", "event":
		if script.Name == "" || strings.EqualFold(name, "name") {
			script.Name = value
		}
	case "placement":
		return setPlacement(script, value)
	case "fen":
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return fmt.Errorf("empty FEN: %w", errors.ErrParseFailure)
		}
		if err := setPlacement(script, fields[0]); err != nil {
			return err
		}
		if len(fields) > 1 {
			return setTurn(script, fields[1])
		}
	case "turn", "tomove":
		return setTurn(script, value)
	case "result":
		script.Result = value
	}
	return nil
}

func setPlacement(script *Script, placement string) error {
	if _, err := engine.ParsePlacement(placement); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrParseFailure, err)
	}
	script.Placement = placement
	return nil
}

func setTurn(script *Script, value string) error {
	turn, err := ParseColour(value)
	if err != nil {
		return err
	}
	script.Turn = turn
	return nil
}

// parseMoveList parses moves, move numbers and comments up to a result,
// the next tag list or the end of input.
func (p *Parser) parseMoveList(script *Script) error {
	for {
		tok := p.currentToken
		switch tok.Type {
		case MoveToken:
			move, err := ParseMove(tok.TokenString)
			if err != nil {
				return &errors.ParseError{
					Err:      err,
					File:     p.file,
					Line:     tok.Line,
					Column:   tok.Column,
					Expected: "coordinate move",
					Got:      fmt.Sprintf("%q", tok.TokenString),
				}
			}
			move.Line, move.Column = tok.Line, tok.Column
			script.Moves = append(script.Moves, move)
			p.nextToken()
		case MoveNumber, CommentToken:
			p.nextToken()
		case TerminatingResult, TagToken, EOFToken:
			return nil
		default:
			return p.errorAt(tok, errors.ErrParseFailure, "move")
		}
	}
}

// parseResult consumes a terminating result.
func (p *Parser) parseResult(script *Script) {
	if p.currentToken.Type == TerminatingResult {
		script.Result = p.currentToken.TokenString
		p.nextToken()
	}
}

// errorAt builds a ParseError for an unexpected token.
func (p *Parser) errorAt(tok *Token, err error, expected string) error {
	got := tok.Type.String()
	if tok.TokenString != "" {
		got = fmt.Sprintf("%q", tok.TokenString)
	}
	return &errors.ParseError{
		Err:      err,
		File:     p.file,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: expected,
		Got:      got,
	}
}

// ParseAll parses every script in the input. It stops at the first error
// and returns the scripts read before it.
func (p *Parser) ParseAll() ([]*Script, error) {
	scripts := make([]*Script, 0, 16)
	for {
		script, err := p.Next()
		if err == io.EOF {
			return scripts, nil
		}
		if err != nil {
			return scripts, err
		}
		scripts = append(scripts, script)
	}
}
