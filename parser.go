package main

// Grammar (§4.2), transcribed here as the parser's structural reference:
//
//	program    := stmt*
//	stmt       := print-stmt | assign
//	assign     := ref ":=" expr
//	print-stmt := "print" ("string" STRLIT | "char" expr | expr) [";"]
//	expr       := (block | INTLIT | ref) ["*"]
//	block      := "{" stmt* "}"
//	ref        := name ("." name)*
//	name       := "^" | "$" IDENT | IDENT
//
// Each production below is a method named after its rule. Parse errors are
// *SyntaxError values bubbled up rather than panicked, so callers can choose
// how to report them.

// Parser turns a token stream into a Program AST per the grammar above.
type Parser struct {
	sc *Scanner
}

// NewParser returns a parser consuming tokens from sc.
func NewParser(sc *Scanner) *Parser { return &Parser{sc: sc} }

// ParseProgram parses an entire source file as a Program node.
func (p *Parser) ParseProgram() (*Node, error) {
	var stmts []*Node
	for p.sc.Cur().Kind != TokEOF {
		stmt, err := p.stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return branch(KindProgram, stmts...), nil
}

func (p *Parser) stmt() (*Node, error) {
	if tok := p.sc.Cur(); tok.Kind == TokIdent && tok.Lexeme == "print" {
		return p.printStmt()
	}
	return p.assign()
}

func (p *Parser) assign() (*Node, error) {
	target, err := p.ref()
	if err != nil {
		return nil, err
	}
	if _, err := p.sc.Expect(":="); err != nil {
		return nil, err
	}
	rhs, err := p.expr()
	if err != nil {
		return nil, err
	}
	return branch(KindAssignment, target, rhs), nil
}

func (p *Parser) printStmt() (*Node, error) {
	if _, err := p.sc.Expect("print"); err != nil {
		return nil, err
	}

	var node *Node
	switch tok := p.sc.Cur(); {
	case tok.Kind == TokIdent && tok.Lexeme == "string":
		p.sc.Advance()
		lit := p.sc.Cur()
		if err := p.sc.CheckKind(TokString); err != nil {
			return nil, err
		}
		p.sc.Advance()
		node = strLeaf(KindPrintString, lit.Lexeme)

	case tok.Kind == TokIdent && tok.Lexeme == "char":
		p.sc.Advance()
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		node = branch(KindPrintChar, arg)

	default:
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		node = branch(KindPrint, arg)
	}

	if p.sc.Consume(";") {
		return node, nil
	}
	return branch(KindNewline, node), nil
}

func (p *Parser) expr() (*Node, error) {
	var node *Node
	var err error

	switch tok := p.sc.Cur(); {
	case tok.Lexeme == "{":
		node, err = p.block()
	case tok.Kind == TokInt:
		p.sc.Advance()
		node = intLit(tok.Int)
	default:
		node, err = p.ref()
	}
	if err != nil {
		return nil, err
	}

	if p.sc.Consume("*") {
		return branch(KindCopyOf, node), nil
	}
	return node, nil
}

func (p *Parser) block() (*Node, error) {
	if _, err := p.sc.Expect("{"); err != nil {
		return nil, err
	}
	var stmts []*Node
	for p.sc.Cur().Lexeme != "}" {
		if p.sc.Cur().Kind == TokEOF {
			return nil, &SyntaxError{Loc: p.sc.Cur().Loc, Lexeme: p.sc.Cur().Lexeme, Expected: "\"}\""}
		}
		stmt, err := p.stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.sc.Expect("}"); err != nil {
		return nil, err
	}
	return branch(KindBlock, stmts...), nil
}

func (p *Parser) ref() (*Node, error) {
	first, err := p.name()
	if err != nil {
		return nil, err
	}
	segs := []*Node{first}
	for p.sc.Consume(".") {
		seg, err := p.name()
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return branch(KindRef, segs...), nil
}

func (p *Parser) name() (*Node, error) {
	tok := p.sc.Cur()
	switch {
	case tok.Lexeme == "^":
		p.sc.Advance()
		return leaf(KindUpvalue), nil

	case tok.Lexeme == "$":
		p.sc.Advance()
		ident := p.sc.Cur()
		if err := p.sc.CheckKind(TokIdent); err != nil {
			return nil, err
		}
		p.sc.Advance()
		return strLeaf(KindDollar, ident.Lexeme), nil

	case tok.Kind == TokIdent:
		p.sc.Advance()
		return strLeaf(KindIdentifier, tok.Lexeme), nil

	default:
		return nil, &SyntaxError{Loc: tok.Loc, Lexeme: tok.Lexeme, Expected: "a name"}
	}
}
