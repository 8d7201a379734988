package forth

import (
	"math"
	"math/bits"
)

func mathWords() []*Word {
	return []*Word{
		binary("+", func(a, b int) int { return a + b }),
		binary("-", func(a, b int) int { return a - b }),
		binary("*", func(a, b int) int { return a * b }),
		{Name: "/", Interpret: func(c *Context) {
			b, a := c.PopInt(), c.PopInt()
			q, _ := c.divMod(a, b)
			c.PushInt(q)
		}},
		{Name: "MOD", Interpret: func(c *Context) {
			b, a := c.PopInt(), c.PopInt()
			_, r := c.divMod(a, b)
			c.PushInt(r)
		}},
		{Name: "/MOD", Interpret: func(c *Context) {
			b, a := c.PopInt(), c.PopInt()
			q, r := c.divMod(a, b)
			c.PushInt(r, q)
		}},
		{Name: "*/", Interpret: func(c *Context) {
			d, b, a := c.PopInt(), c.PopInt(), c.PopInt()
			q, _ := c.divMod(a*b, d)
			c.PushInt(q)
		}},
		{Name: "*/MOD", Interpret: func(c *Context) {
			d, b, a := c.PopInt(), c.PopInt(), c.PopInt()
			q, r := c.divMod(a*b, d)
			c.PushInt(r, q)
		}},
		unary("1+", func(a int) int { return a + 1 }),
		unary("1-", func(a int) int { return a - 1 }),
		unary("2*", func(a int) int { return a << 1 }),
		unary("2/", func(a int) int { return a >> 1 }),
		unary("ABS", func(a int) int {
			if a < 0 {
				return -a
			}
			return a
		}),
		unary("NEGATE", func(a int) int { return -a }),
		binary("MIN", func(a, b int) int { return min(a, b) }),
		binary("MAX", func(a, b int) int { return max(a, b) }),

		binary("AND", func(a, b int) int { return a & b }),
		binary("OR", func(a, b int) int { return a | b }),
		binary("XOR", func(a, b int) int { return a ^ b }),
		unary("INVERT", func(a int) int { return ^a }),
		binary("LSHIFT", func(a, b int) int { return int(uint(a) << uint(b)) }),
		binary("RSHIFT", func(a, b int) int { return int(uint(a) >> uint(b)) }),

		compare("=", func(a, b int) bool { return a == b }),
		compare("<>", func(a, b int) bool { return a != b }),
		compare("<", func(a, b int) bool { return a < b }),
		compare(">", func(a, b int) bool { return a > b }),
		{Name: "U<", Interpret: func(c *Context) {
			b, a := c.PopUnsigned(), c.PopUnsigned()
			c.Push(Bool(a < b))
		}},
		{Name: "U>", Interpret: func(c *Context) {
			b, a := c.PopUnsigned(), c.PopUnsigned()
			c.Push(Bool(a > b))
		}},
		predicate("0=", func(a int) bool { return a == 0 }),
		predicate("0<", func(a int) bool { return a < 0 }),
		predicate("0>", func(a int) bool { return a > 0 }),
		predicate("0<>", func(a int) bool { return a != 0 }),
		{Name: "TRUE", Interpret: func(c *Context) { c.Push(Bool(true)) }},
		{Name: "FALSE", Interpret: func(c *Context) { c.Push(Bool(false)) }},

		{Name: "S>D", Interpret: func(c *Context) {
			n := c.PopInt()
			c.PushInt(n, n>>(bits.UintSize-1))
		}},
		{Name: "M*", Interpret: func(c *Context) {
			b, a := c.PopInt(), c.PopInt()
			hi, lo := bits.Mul(magnitude(a), magnitude(b))
			if (a < 0) != (b < 0) {
				hi, lo = negate2(hi, lo)
			}
			c.PushInt(int(lo), int(hi))
		}},
		{Name: "UM*", Interpret: func(c *Context) {
			b, a := c.PopUnsigned(), c.PopUnsigned()
			hi, lo := bits.Mul(uint(a), uint(b))
			c.PushInt(int(lo), int(hi))
		}},
		{Name: "UM/MOD", Interpret: func(c *Context) {
			d := c.PopUnsigned()
			hi, lo := c.PopInt(), c.PopInt()
			q, r := c.div2(uint(hi), uint(lo), uint(d))
			if q > math.MaxInt {
				c.Fail(ErrQuotientOverflow)
			}
			c.PushInt(int(r), int(q))
		}},
		{Name: "FM/MOD", Interpret: func(c *Context) {
			d := c.PopInt()
			hi, lo := c.PopInt(), c.PopInt()
			q, r := c.floorDiv2(hi, lo, d)
			c.PushInt(r, q)
		}},
	}
}

func unary(name string, op func(a int) int) *Word {
	return &Word{Name: name, Interpret: func(c *Context) {
		c.PushInt(op(c.PopInt()))
	}}
}

func binary(name string, op func(a, b int) int) *Word {
	return &Word{Name: name, Interpret: func(c *Context) {
		b, a := c.PopInt(), c.PopInt()
		c.PushInt(op(a, b))
	}}
}

func compare(name string, op func(a, b int) bool) *Word {
	return &Word{Name: name, Interpret: func(c *Context) {
		b, a := c.PopInt(), c.PopInt()
		c.Push(Bool(op(a, b)))
	}}
}

func predicate(name string, op func(a int) bool) *Word {
	return &Word{Name: name, Interpret: func(c *Context) {
		c.Push(Bool(op(c.PopInt())))
	}}
}

// divMod divides with the quotient rounded toward negative infinity, so the
// remainder takes the sign of the divisor.
func (c *Context) divMod(a, b int) (q, r int) {
	if b == 0 {
		c.Fail(ErrDivisionByZero)
	}
	q, r = a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}

func (c *Context) div2(hi, lo, d uint) (q, r uint) {
	if d == 0 {
		c.Fail(ErrDivisionByZero)
	}
	if hi >= d {
		c.Fail(ErrQuotientOverflow)
	}
	return bits.Div(hi, lo, d)
}

// floorDiv2 divides the signed double cell hi:lo by d, flooring.
func (c *Context) floorDiv2(hi, lo, d int) (q, r int) {
	uhi, ulo := uint(hi), uint(lo)
	neg := hi < 0
	if neg {
		uhi, ulo = negate2(uhi, ulo)
	}
	uq, ur := c.div2(uhi, ulo, magnitude(d))
	if uq > math.MaxInt {
		c.Fail(ErrQuotientOverflow)
	}
	q, r = int(uq), int(ur)
	if neg != (d < 0) {
		q = -q
	}
	if neg {
		r = -r
	}
	if r != 0 && (r < 0) != (d < 0) {
		q--
		r += d
	}
	return q, r
}

func magnitude(n int) uint {
	if n < 0 {
		return uint(-n)
	}
	return uint(n)
}

// negate2 negates a two's complement double cell.
func negate2(hi, lo uint) (uint, uint) {
	lo, carry := bits.Add(^lo, 1, 0)
	hi, _ = bits.Add(^hi, 0, carry)
	return hi, lo
}
