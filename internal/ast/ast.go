package ast

import (
	"github.com/cadenza-lang/cadenza/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes handed over by the parser.
type Node interface {
	TokenLiteral() string
}

// Statement is a Node that represents a module-body statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Module is the root node of one compilation unit: the parsed body of a
// single module definition.
type Module struct {
	Token      token.Token // The 'module' token
	Name       *Identifier
	File       string // Source file path, for diagnostics
	Statements []Statement
}

func (m *Module) TokenLiteral() string { return m.Token.Lexeme }
func (m *Module) GetToken() token.Token {
	if m == nil {
		return token.Token{}
	}
	return m.Token
}
