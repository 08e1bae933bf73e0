package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, And, LookupIdent("and"))
	assert.Equal(t, While, LookupIdent("while"))
	assert.Equal(t, Identifier, LookupIdent("foo"))
	assert.Equal(t, Identifier, LookupIdent("And"), "keyword lookup is case sensitive")
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword(And))
	assert.True(t, IsKeyword(While))
	assert.False(t, IsKeyword(Identifier))
	assert.False(t, IsKeyword(LeftParen))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "LEFT_PAREN", LeftParen.String())
	assert.Equal(t, "EQUAL_EQUAL", EqualEqual.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "TOKEN(999)", Type(999).String())
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{
			name: "punctuation",
			tok:  Token{Type: LeftParen, Lexeme: "("},
			want: "LEFT_PAREN ( null",
		},
		{
			name: "eof has empty lexeme",
			tok:  Token{Type: EOF},
			want: "EOF  null",
		},
		{
			name: "string carries decoded value",
			tok:  Token{Type: String, Lexeme: `"hi"`, Str: "hi"},
			want: `STRING "hi" hi`,
		},
		{
			name: "number value drops trailing zeros",
			tok:  Token{Type: Number, Lexeme: "45.670", Num: 45.67},
			want: "NUMBER 45.670 45.67",
		},
		{
			name: "integer number stays integral",
			tok:  Token{Type: Number, Lexeme: "12", Num: 12},
			want: "NUMBER 12 12",
		},
		{
			name: "unexpected character",
			tok:  Token{Type: Illegal, Lexeme: "@", Pos: Position{Line: 3, Column: 1}},
			want: "[line 3] Error: Unexpected character: @",
		},
		{
			name: "unterminated string",
			tok:  Token{Type: UnterminatedString, Lexeme: `"abc`, Pos: Position{Line: 2, Column: 5}},
			want: "[line 2] Error: Unterminated string.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestTokenIsError(t *testing.T) {
	assert.True(t, Token{Type: Illegal}.IsError())
	assert.True(t, Token{Type: UnterminatedString}.IsError())
	assert.False(t, Token{Type: String}.IsError())
	assert.False(t, Token{Type: EOF}.IsError())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12", FormatNumber(12))
	assert.Equal(t, "45.67", FormatNumber(45.67))
	assert.Equal(t, "0.5", FormatNumber(0.5))
	assert.Equal(t, "-3", FormatNumber(-3))
}
