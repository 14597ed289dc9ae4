package observable

import "strconv"

// ParsingError is the interface implemented by every error resulting from
// malformed expression text. Registration of an expression observable
// fails with a ParsingError and leaves the registry unchanged.
type ParsingError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

// OperatorError is an error indicating an operator token in a position
// where it is not understood. It implements ParsingError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a term at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements ParsingError.
type BracketError struct {
	// Col is the position of the offending token.
	Col int
	// Left is the opening parenthesis, or empty if a close appeared with
	// no open.
	Left string
	// Right is the mismatched closing token, or empty at end of input.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ReferenceError is an error indicating a malformed <<...>> reference:
// unbalanced delimiters, empty content, an invalid qualified name, or an
// invalid kinematics override. It implements ParsingError.
type ReferenceError struct {
	// Col is the position of the opening delimiter.
	Col int
	// Text is the reference content as scanned.
	Text string
	// Reason describes what is wrong with it.
	Reason string
}

func (err *ReferenceError) Error() string {
	return errpos(err.Col, "invalid reference <<"+err.Text+">>: "+err.Reason)
}

func (err *ReferenceError) Pos() int {
	return err.Col
}

// StrayTokenError is an error indicating a term where an operator or the
// end of the expression was expected, e.g. two references with no operator
// between them. It implements ParsingError.
type StrayTokenError struct {
	// Col is the position of the stray token.
	Col int
	// Token is the token text.
	Token string
}

func (err *StrayTokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+" where an operator or end of expression was expected")
}

func (err *StrayTokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression. It implements ParsingError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ ParsingError = (*OperatorError)(nil)
	_ ParsingError = (*BracketError)(nil)
	_ ParsingError = (*ReferenceError)(nil)
	_ ParsingError = (*StrayTokenError)(nil)
	_ ParsingError = (*EmptyExpressionError)(nil)
	_ ParsingError = (*LexError)(nil)
)
