package forth

import (
	"testing"
)

func Test_stackWords(t *testing.T) {
	evalTestCases{
		evalTest("DUP").withStack(1).eval("DUP").expectStack(1, 1),
		evalTest("DROP").withStack(1, 2).eval("DROP").expectStack(1),
		evalTest("SWAP").withStack(1, 2).eval("SWAP").expectStack(2, 1),
		evalTest("OVER").withStack(1, 2).eval("OVER").expectStack(1, 2, 1),
		evalTest("ROT").withStack(1, 2, 3).eval("ROT").expectStack(2, 3, 1),
		evalTest("?DUP zero").withStack(0).eval("?DUP").expectStack(0),
		evalTest("?DUP non-zero").withStack(2).eval("?DUP").expectStack(2, 2),
		evalTest("NIP").withStack(1, 2).eval("NIP").expectStack(2),
		evalTest("TUCK").withStack(1, 2).eval("TUCK").expectStack(2, 1, 2),
		evalTest("PICK 0").withStack(1, 2, 3, 0).eval("PICK").expectStack(1, 2, 3, 3),
		evalTest("PICK 2").withStack(1, 2, 3, 2).eval("PICK").expectStack(1, 2, 3, 1),
		evalTest("PICK too deep").withStack(1, 2, 3, 3).eval("PICK").expectError(ErrStackUnderflow),
		evalTest("DEPTH").withStack(7, 8, 9).eval("DEPTH").expectStack(7, 8, 9, 3),
		evalTest("2DUP").withStack(1, 2).eval("2DUP").expectStack(1, 2, 1, 2),
		evalTest("2DROP").withStack(1, 2, 3).eval("2DROP").expectStack(1),
		evalTest("2SWAP").withStack(1, 2, 3, 4).eval("2SWAP").expectStack(3, 4, 1, 2),
		evalTest("2OVER").withStack(1, 2, 3, 4).eval("2OVER").expectStack(1, 2, 3, 4, 1, 2),

		evalTest(">R R>").withStack(1, 2).eval(">R 3 R>").expectStack(1, 3, 2).expectRStack(),
		evalTest("R@").eval("5 >R R@").expectStack(5).expectRStack(5),
		evalTest("2>R 2R@ 2R>").eval("1 2 2>R 2R@ 2R>").expectStack(1, 2, 1, 2).expectRStack(),
		evalTest("R> underflow").eval("R>").expectError(ErrStackUnderflow),

		evalTest("DROP underflow").eval("DROP").expectError(ErrStackUnderflow),
		evalTest("SWAP underflow").withStack(1).eval("SWAP").expectError(ErrStackUnderflow),
	}.run(t)
}

func Test_mathWords(t *testing.T) {
	evalTestCases{
		evalTest("+").eval("3 4 +").expectStack(7),
		evalTest("-").eval("3 4 -").expectStack(-1),
		evalTest("*").eval("3 4 *").expectStack(12),
		evalTest("/").eval("7 2 /").expectStack(3),
		evalTest("/ floors").eval("-7 2 /").expectStack(-4),
		evalTest("MOD").eval("7 2 MOD").expectStack(1),
		evalTest("MOD takes divisor sign").eval("-7 2 MOD 7 -2 MOD").expectStack(1, -1),
		evalTest("/MOD").eval("7 2 /MOD").expectStack(1, 3),
		evalTest("*/").eval("2 3 4 */").expectStack(1),
		evalTest("*/MOD").eval("2 3 4 */MOD").expectStack(2, 1),
		evalTest("/ by zero").withStack(9).eval("1 0 /").expectError(ErrDivisionByZero).expectStack(9),
		evalTest("MOD by zero").eval("1 0 MOD").expectError(ErrDivisionByZero),

		evalTest("1+ 1-").eval("5 1+ 5 1-").expectStack(6, 4),
		evalTest("2* 2/").eval("3 2* -1 2/ 9 2/").expectStack(6, -1, 4),
		evalTest("ABS NEGATE").eval("-5 ABS 3 NEGATE").expectStack(5, -3),
		evalTest("MIN MAX").eval("3 7 MIN 3 7 MAX").expectStack(3, 7),

		evalTest("AND OR XOR").eval("12 10 AND 12 10 OR 12 10 XOR").expectStack(8, 14, 6),
		evalTest("INVERT").eval("0 INVERT").expectStack(-1),
		evalTest("LSHIFT").eval("1 4 LSHIFT").expectStack(16),
		evalTest("RSHIFT is logical").eval("-1 60 RSHIFT 16 2 RSHIFT").expectStack(15, 4),

		evalTest("=").eval("1 2 = 2 2 =").expectStack(0, 1),
		evalTest("<>").eval("1 2 <> 2 2 <>").expectStack(1, 0),
		evalTest("< >").eval("1 2 < 1 2 >").expectStack(1, 0),
		evalTest("U< U>").eval("-3 2 U< -3 2 U>").expectStack(0, 1),
		evalTest("0= 0< 0> 0<>").eval("0 0= -1 0< 1 0> 0 0<>").expectStack(1, 1, 1, 0),
		evalTest("TRUE FALSE").eval("TRUE FALSE").expectStack(1, 0),

		evalTest("S>D").eval("5 S>D -5 S>D").expectStack(5, 0, -5, -1),
		evalTest("M*").eval("3 4 M* -3 4 M*").expectStack(12, 0, -12, -1),
		evalTest("UM*").eval("3 4 UM*").expectStack(12, 0),
		evalTest("UM/MOD").eval("13 0 5 UM/MOD").expectStack(3, 2),
		evalTest("UM/MOD overflow").eval("0 1 1 UM/MOD").expectError(ErrQuotientOverflow),
		evalTest("FM/MOD").eval("7 S>D 2 FM/MOD").expectStack(1, 3),
		evalTest("FM/MOD floors").eval("-7 S>D 2 FM/MOD").expectStack(1, -4),
		evalTest("FM/MOD negative divisor").eval("7 S>D -2 FM/MOD").expectStack(-1, -4),
		evalTest("FM/MOD by zero").eval("1 0 0 FM/MOD").expectError(ErrDivisionByZero),

		evalTest("math on xt").eval("' DUP 1 +").expectError(CellTypeError{Want: IntCell, Got: XTCell}),
	}.run(t)
}

func Test_memoryWords(t *testing.T) {
	evalTestCases{
		evalTest("! @").withHeap(0, 0).eval("42 1 ! 1 @").expectStack(42).expectHeap(0, 0, 42),
		evalTest("+!").withHeap(5).eval("3 0 +! 0 @").expectStack(8),
		evalTest("2! 2@").withHeap(0, 0).eval("1 2 0 2! 0 2@").expectStack(1, 2).expectHeap(0, 2, 1),
		evalTest("C! C@").withHeap(0).
			eval("97 0 C! 0 C@").
			expectCells(Char('a')),
		evalTest(",").eval("7 , 8 , HERE").expectStack(2).expectHeap(0, 7, 8),
		evalTest("C,").eval("'x' C, 0 C@").expectCells(Char('x')),
		evalTest("ALLOT").eval("HERE 3 ALLOT HERE SWAP -").expectStack(3).expectHere(3),
		evalTest("ALLOT negative").withHeap(1, 2, 3).eval("-2 ALLOT HERE").expectStack(1),
		evalTest("ALLOT below zero").eval("-1 ALLOT").expectError(AddressError{-1, "allot"}),
		evalTest("UNUSED").withOptions(WithHeapLimit(10)).eval("4 ALLOT UNUSED").expectStack(6),
		evalTest("heap limit").withOptions(WithHeapLimit(10)).eval("11 ALLOT").expectError(ErrHeapLimit),
		evalTest("CELLS CELL+ CHARS CHAR+").eval("3 CELLS 3 CELL+ 3 CHARS 3 CHAR+").expectStack(3, 4, 3, 4),
		evalTest("@ out of range").eval("5 @").expectError(AddressError{5, "load"}),
		evalTest("! out of range").eval("1 5 !").expectError(AddressError{5, "stor"}),

		evalTest("FILL").withHeap(0, 0, 0, 9).eval("0 3 '*' FILL").expectHeap(0, '*', '*', '*', 9),
		evalTest("ERASE").withHeap(1, 2, 3).eval("1 2 ERASE").expectHeap(0, 1, 0, 0),
		evalTest("MOVE").withHeap(1, 2, 3, 0, 0, 0).eval("0 3 3 MOVE").expectHeap(0, 1, 2, 3, 1, 2, 3),
		evalTest("MOVE overlapping").withHeap(1, 2, 3, 4).eval("0 1 3 MOVE").expectHeap(0, 1, 1, 2, 3),
		evalTest("MOVE past here").withHeap(1, 2, 3).eval("0 2 2 MOVE").expectError(AddressError{2, "move"}),
		evalTest("MOVE huge count").eval("0 1 4611686018427387904 MOVE").apply(
			withEvalHeap(1, 2, 3),
			expectEvalError(AddressError{0, "move"}),
			expectEvalHeap(0, 1, 2, 3)),
		evalTest("COUNT").eval(`C" abc" COUNT`).expectStack(1, 3).expectHeap(0, 3, 'a', 'b', 'c'),
	}.run(t)
}

func Test_ioWords(t *testing.T) {
	evalTestCases{
		evalTest(".").eval("1 2 . .").expectOutput("2 1 "),
		evalTest("U.").eval("-1 U.").expectOutput("1 "),
		evalTest(". hex").eval("255 HEX .").expectOutput("FF "),
		evalTest("hex literal").eval("HEX FF DECIMAL .").expectOutput("255 "),
		evalTest(".R").eval("42 5 .R").expectOutput("   42"),
		evalTest("U.R").eval("-7 3 U.R").expectOutput("  7"),
		evalTest(".S").eval("1 2 .S").expectOutput("<2> 1 2 ").expectStack(1, 2),
		evalTest("EMIT").eval("65 EMIT 'b' EMIT").expectOutput("Ab"),
		evalTest("CR SPACE SPACES").eval("CR SPACE 3 SPACES").expectOutput("\n    "),
		evalTest("BL").eval("BL").expectCells(Char(' ')),
		evalTest("TYPE").eval(`S" hello" TYPE`).expectOutput("hello"),
		evalTest(`."`).eval(`." Hello, World!" CR`).expectOutput("Hello, World!\n"),
		evalTest(`." unterminated`).eval(`." abc`).expectError(UnterminatedLiteralError('"')),
		evalTest(".(").eval(".( hi) 1").expectOutput("hi").expectStack(1),
		evalTest(`S"`).eval(`S" hi"`).expectStack(1, 2).expectHeap(0, 2, 'h', 'i'),
		evalTest(`C"`).eval(`C" hi"`).expectStack(0),
		evalTest("PARSE").eval("CHAR ) PARSE abc) TYPE").expectOutput("abc"),
		evalTest("PARSE to end").eval("CHAR | PARSE rest").expectStack(1, 4),
		evalTest("CHAR").eval("CHAR abc").expectCells(Char('a')),
		evalTest("CHAR missing").eval("CHAR").expectError(ErrMissingWord),
		evalTest("( comment").eval("1 ( 2 ) 3").expectStack(1, 3),
		evalTest(`\ comment`).eval("1 \\ 2\n3").expectStack(1, 3),
		evalTest("WORDS").withOptions(WithoutStandardLibrary(), WithWords(
			&Word{Name: "A"},
			&Word{Name: "B"},
			libraryWord("WORDS"),
		)).eval("WORDS").expectOutput("WORDS B A "),
	}.run(t)
}

func Test_numberLiterals(t *testing.T) {
	evalTestCases{
		evalTest("decimal").eval("42 -42").expectStack(42, -42),
		evalTest("prefixed").eval("#10 $10 %10 $-10").expectStack(10, 16, 2, -16),
		evalTest("hex base").withOptions(WithBase(16)).eval("ff 10").expectStack(255, 16),
		evalTest("quoted char").eval("'a' '\\n'").expectCells(Char('a'), Char('\n')),
		evalTest("control mnemonic").eval("<ESC> ^[ <sp>").expectCells(Char(0x1b), Char(0x1b), Char(' ')),
		evalTest("not a number").eval("12abc").expectError(UnknownWordError("12abc")),
		evalTest("bad base").withOptions(WithBase(99)).eval("1").expectError(BaseError(99)),
	}.run(t)
}

func libraryWord(name string) *Word {
	for _, w := range StandardLibrary() {
		if w.Name == name {
			return w
		}
	}
	panic("no library word named " + name)
}
