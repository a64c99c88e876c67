package ast

import (
	"github.com/cadenza-lang/cadenza/internal/token"
)

// FunctionStatement represents one method definition clause.
// fun name(params) when guard { body }
type FunctionStatement struct {
	Token      token.Token // The 'fun' token
	Name       *Identifier
	Parameters []*Parameter
	Guard      Expression // Optional 'when' guard
	Body       *BlockStatement
}

// Parameter is one entry of a definition's parameter list. Pattern is
// the match pattern (an identifier for plain parameters, a literal for
// pattern clauses like fact(0)). Default, when present, marks the
// parameter as optional.
type Parameter struct {
	Token   token.Token
	Pattern Expression
	Default Expression // Optional default value (e.g., fun pad(s, n = 1))
}

func (fs *FunctionStatement) statementNode()        {}
func (fs *FunctionStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *FunctionStatement) GetToken() token.Token { return fs.Token }

// VisibilityStatement switches the module's current visibility mode.
// Every definition after it is registered with that mode until the next
// switch. Mode is one of the config.Visibility*Name constants.
type VisibilityStatement struct {
	Token token.Token // The visibility keyword token
	Mode  string
}

func (vs *VisibilityStatement) statementNode()       {}
func (vs *VisibilityStatement) TokenLiteral() string { return vs.Token.Lexeme }
func (vs *VisibilityStatement) GetToken() token.Token {
	if vs == nil {
		return token.Token{}
	}
	return vs.Token
}

// IfStatement conditionally includes a group of module-body statements.
// if cond { then } else { else }
type IfStatement struct {
	Token       token.Token // The 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // else block (optional)
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// BlockStatement is a brace-delimited statement sequence.
type BlockStatement struct {
	Token      token.Token // The '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// ExpressionStatement wraps an expression appearing in statement
// position (method bodies are expression sequences).
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}
