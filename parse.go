package observable

import (
	"io"
	"strconv"
	"strings"
)

// Expr  = num | Ref | Neg | Plus | Add | Sub | Mul | Div | '(' Expr ')'
// Ref   = '<<' qualified-name [ '@' Aliases ] '>>'
// Aliases = name '=' name { ',' name '=' name }
// Neg   = '-' Expr
// Plus  = '+' Expr
// Add   = Expr '+' Expr
// Sub   = Expr '-' Expr
// Mul   = Expr '*' Expr
// Div   = Expr '/' Expr

// Parse parses an expression into an unbound Expr. Malformed input fails
// with a ParsingError describing the offending token and its position.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if tok.kind != tokenEOF {
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: tok.pos}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses a single term. If there is no error, then parseterm
// pushes the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an
// error in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, until operator) (*node, error) {
	n, err := parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				scan.push(end)
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenNum, tokenRef, tokenOpen:
			// No implicit multiplication: two adjacent terms are an error.
			return nil, &StrayTokenError{Col: tok.pos, Token: tokDisplay(tok)}
		case tokenClose, tokenEOF:
			scan.push(tok)
			return n, nil
		default:
			panic("observable: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are
// unary, and any encountered token must be valid as the start of a
// subexpression.
func parselhs(scan *lexer, until operator) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		n = &node{kind: nodeNum, num: v, text: tok.text}
	case tokenRef:
		n, err = parseref(tok)
		if err != nil {
			return nil, err
		}
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// Just use the caller's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			scan.push(end)
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = &node{kind: prec.op, left: rhs}
	case tokenOpen:
		rhs, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			// The only other way a subexpression ends is EOF.
			return nil, &BracketError{Col: end.pos, Left: "("}
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// This might close the enclosing parenthesis, so let the caller
		// decide what to do.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("observable: unknown token: " + tok.String())
	}
	return n, nil
}

// parseref turns a reference token into an unbound reference node,
// validating the qualified name and the optional kinematics override.
func parseref(tok lexToken) (*node, error) {
	content := tok.text
	namepart := content
	var aliases []kinAlias
	if i := strings.IndexByte(content, '@'); i >= 0 {
		namepart = content[:i]
		var reason string
		aliases, reason = parsealiases(content[i+1:])
		if reason != "" {
			return nil, &ReferenceError{Col: tok.pos, Text: content, Reason: reason}
		}
	}
	namepart = strings.TrimSpace(namepart)
	if namepart == "" {
		return nil, &ReferenceError{Col: tok.pos, Text: content, Reason: "empty reference"}
	}
	name, err := NewQualifiedName(namepart)
	if err != nil {
		return nil, &ReferenceError{Col: tok.pos, Text: content, Reason: err.Error()}
	}
	return &node{kind: nodeRef, name: name, aliases: aliases}, nil
}

// parsealiases parses the kinematics override following '@' as a list of
// from=to pairs. The second result is the failure reason, or empty.
func parsealiases(s string) ([]kinAlias, string) {
	var aliases []kinAlias
	seen := make(map[string]bool)
	for _, pair := range strings.Split(s, ",") {
		eq := strings.IndexByte(pair, '=')
		if eq < 0 {
			return nil, "kinematics override " + strconv.Quote(pair) + " is not of the form from=to"
		}
		from := strings.TrimSpace(pair[:eq])
		to := strings.TrimSpace(pair[eq+1:])
		if from == "" || to == "" {
			return nil, "kinematics override " + strconv.Quote(pair) + " has an empty side"
		}
		if strings.ContainsAny(from, "=@<>") || strings.ContainsAny(to, "=@<>") {
			return nil, "kinematics override " + strconv.Quote(pair) + " contains a reserved character"
		}
		if seen[from] {
			return nil, "kinematics override renames " + strconv.Quote(from) + " twice"
		}
		seen[from] = true
		aliases = append(aliases, kinAlias{From: from, To: to})
	}
	return aliases, ""
}

// tokDisplay renders a token the way it appears in the source, for error
// messages.
func tokDisplay(tok lexToken) string {
	if tok.kind == tokenRef {
		return "<<" + tok.text + ">>"
	}
	return tok.text
}

type operator struct {
	// prec is the precedence value. Lower is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such
// binary operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
