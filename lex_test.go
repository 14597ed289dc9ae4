package observable

import (
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}}, 0},
		{"1e", []lexToken{{pos: 1}}, 1},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}}, 0},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1}}, 0},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}}, 1},
		{".", []lexToken{{pos: 1}}, 1},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		// references
		{"<<mass::mu>>", []lexToken{{text: "mass::mu", kind: tokenRef, pos: 1}}, 0},
		{"<<a>>", []lexToken{{text: "a", kind: tokenRef, pos: 1}}, 0},
		{"<<B->Dlnu::BR>>", []lexToken{{text: "B->Dlnu::BR", kind: tokenRef, pos: 1}}, 0},
		{"<<a@q2=s>>", []lexToken{{text: "a@q2=s", kind: tokenRef, pos: 1}}, 0},
		{"<<a>> <<b>>", []lexToken{{text: "a", kind: tokenRef, pos: 1}, {text: "b", kind: tokenRef, pos: 7}}, 0},
		{"<<a", []lexToken{{pos: 1}}, 1},
		{"<a>>", nil, 4},
		{">>", nil, 2},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"a--b", []lexToken{{pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {pos: 4}}, 2},
		{"<<a>> / <<b>>", []lexToken{{text: "a", kind: tokenRef, pos: 1}, {text: "/", kind: tokenOp, pos: 7}, {text: "b", kind: tokenRef, pos: 9}}, 0},
		// brackets
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"0$", []lexToken{{pos: 1}}, 1},
		{"$0", []lexToken{{pos: 1}, {text: "0", kind: tokenNum, pos: 2}}, 1},
		{"x", []lexToken{{pos: 1}}, 1},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		for got, err := scan.next(); got.kind != tokenEOF; got, err = scan.next() {
			if err == io.EOF {
				break
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
			}
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}
