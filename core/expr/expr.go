// Package expr evaluates flat arithmetic expressions for the calc builtin.
//
// Grammar, standard precedence, left to right:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := ['+' | '-'] (number | '(' expression ')')
//
// The evaluator is deliberately lenient: a factor that can't be parsed
// evaluates to 0 and an unmatched parenthesis stops the scan without
// complaint. Division follows float64 semantics, so dividing by zero
// yields an infinity rather than an error.
package expr

import "strconv"

// Eval evaluates input and returns the result. Malformed input evaluates
// to whatever prefix could be consumed, or 0.
func Eval(input string) float64 {
	p := &parser{input: input}
	return p.expression()
}

// parser is a cursor over one expression string.
type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expression() float64 {
	value := p.term()
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			value += p.term()
		case '-':
			p.pos++
			value -= p.term()
		default:
			return value
		}
	}
}

func (p *parser) term() float64 {
	value := p.factor()
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			value *= p.factor()
		case '/':
			p.pos++
			value /= p.factor()
		default:
			return value
		}
	}
}

func (p *parser) factor() float64 {
	p.skipSpace()

	sign := 1.0
	switch p.peek() {
	case '+':
		p.pos++
	case '-':
		sign = -1.0
		p.pos++
	}
	p.skipSpace()

	if p.peek() == '(' {
		p.pos++
		value := p.expression()
		// A missing close paren just ends the scan.
		if p.peek() == ')' {
			p.pos++
		}
		return sign * value
	}

	return sign * p.number()
}

// number scans a floating point literal at the cursor. If no literal
// starts here the cursor doesn't move and the result is 0.
func (p *parser) number() float64 {
	start := p.pos

	digits := 0
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
		digits++
	}
	if p.pos < len(p.input) && p.input[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
			digits++
		}
	}
	if digits == 0 {
		p.pos = start
		return 0
	}

	// Exponent, only if at least one digit follows the marker.
	if p.pos < len(p.input) && (p.input[p.pos] == 'e' || p.input[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.input) && (p.input[p.pos] == '+' || p.input[p.pos] == '-') {
			p.pos++
		}
		if p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
				p.pos++
			}
		} else {
			p.pos = mark
		}
	}

	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return 0
	}
	return value
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
