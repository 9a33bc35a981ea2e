package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent_Keywords(t *testing.T) {
	tests := []struct {
		ident    string
		expected Type
	}{
		{"def", DEF},
		{"return", RETURN},
		{"pass", PASS},
		{"for", FOR},
		{"while", WHILE},
		{"if", IF},
		{"elif", ELIF},
		{"else", ELSE},
		{"in", IN},
		{"is", IS},
		{"and", AND},
		{"or", OR},
		{"not", NOT},
		{"import", IMPORT},
		{"from", FROM},
		{"raise", RAISE},
		{"break", BREAK},
		{"continue", CONTINUE},
		{"True", TRUE},
		{"False", FALSE},
		{"None", NONE},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LookupIdent(tt.ident), "keyword %q", tt.ident)
	}
}

func TestLookupIdent_Identifiers(t *testing.T) {
	// Python keywords are case-sensitive: Def is a plain identifier.
	for _, ident := range []string{"add", "fib", "Def", "RETURN", "true", "none", "klass"} {
		assert.Equal(t, IDENT, LookupIdent(ident), "identifier %q", ident)
	}
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword(DEF))
	assert.True(t, IsKeyword(NONE))
	assert.False(t, IsKeyword(IDENT))
	assert.False(t, IsKeyword(PLUS))
	assert.False(t, IsKeyword(EOF))
}

func TestIsOperator(t *testing.T) {
	assert.True(t, IsOperator(PLUS))
	assert.True(t, IsOperator(RBRACKET))
	assert.False(t, IsOperator(DEF))
	assert.False(t, IsOperator(NEWLINE))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "def", DEF.String())
	assert.Equal(t, "+", PLUS.String())
	assert.Equal(t, "NEWLINE", NEWLINE.String())
	assert.Equal(t, "->", ARROW.String())
}

func TestPositionIsValid(t *testing.T) {
	assert.False(t, Position{}.IsValid())
	assert.True(t, Position{Line: 1, Column: 1}.IsValid())
}
