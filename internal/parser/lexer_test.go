package parser

import (
	"strings"
	"testing"
)

func TestLexer_Tokens(t *testing.T) {
	src := "[Event \"test\"]\n1.e4 ; open\n{a\nb} e5 1/2-1/2"

	want := []struct {
		typ  TokenType
		text string
		line uint
	}{
		{TagToken, "Event", 1},
		{MoveNumber, "1.", 2},
		{MoveToken, "e4", 2},
		{CommentToken, "open", 2},
		{CommentToken, "a b", 3},
		{MoveToken, "e5", 4},
		{TerminatingResult, "1/2-1/2", 4},
		{EOFToken, "", 4},
	}

	l := NewLexer(strings.NewReader(src))
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ || tok.TokenString != w.text || tok.Line != w.line {
			t.Fatalf("token %d = %v %q line %d; want %v %q line %d",
				i, tok.Type, tok.TokenString, tok.Line, w.typ, w.text, w.line)
		}
	}
}

func TestLexer_TagValue(t *testing.T) {
	tok := NewLexer(strings.NewReader(`[FEN "8/8/8/8/8/8/8/K6k w - - 0 1"]`)).NextToken()

	if tok.Type != TagToken {
		t.Fatalf("Type = %v; want TAG", tok.Type)
	}
	if tok.TagValue != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("TagValue = %q", tok.TagValue)
	}
}

func TestLexer_MoveNumber(t *testing.T) {
	tests := []struct {
		word string
		typ  TokenType
		num  uint
	}{
		{"1.", MoveNumber, 1},
		{"23...", MoveNumber, 23},
		{"7", MoveToken, 0},
		{"e4", MoveToken, 0},
		{"0-1", TerminatingResult, 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			tok := NewLexer(strings.NewReader(tt.word)).NextToken()
			if tok.Type != tt.typ || tok.MoveNum != tt.num {
				t.Errorf("NextToken(%q) = %v %d; want %v %d", tt.word, tok.Type, tok.MoveNum, tt.typ, tt.num)
			}
		})
	}
}
