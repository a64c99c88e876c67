package token

// Type identifies the kind of a token handed over by the parser.
type Type string

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	IDENT  Type = "IDENT"
	INT    Type = "INT"
	STRING Type = "STRING"

	FUN   Type = "FUN"
	IF    Type = "IF"
	ELSE  Type = "ELSE"
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"

	// Visibility mode keywords.
	PUBLIC    Type = "PUBLIC"
	PROTECTED Type = "PROTECTED"
	CALLBACK  Type = "CALLBACK"
	PRIVATE   Type = "PRIVATE"
)

// Token is a single lexical token with its source position.
// The parser is an external collaborator; this subsystem only carries
// tokens through for diagnostics.
type Token struct {
	Type    Type
	Lexeme  string
	Literal string
	Line    int
	Column  int
}

// At builds a position-only token for nodes synthesized by the compiler
// (wrapper clauses, placeholder parameters).
func At(line, column int) Token {
	return Token{Line: line, Column: column}
}
