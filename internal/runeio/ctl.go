package runeio

import (
	"errors"
	"strconv"
	"strings"
)

// Mnemonic names for the C0 controls, the two pseudo controls (space and
// delete), and the C1 controls, indexed by code point within their block.
var (
	c0Names = strings.Fields(`
		NUL SOH STX ETX EOT ENQ ACK BEL BS HT NL VT NP CR SO SI
		DLE DC1 DC2 DC3 DC4 NAK SYN ETB CAN EM SUB ESC FS GS RS US`)
	c1Names = strings.Fields(`
		PAD HOP BPH NBH IND NEL SSA ESA HTS HTJ VTS PLD PLU RI SS2 SS3
		DCS PU1 PU2 STS CCH MW SPA EPA SOS SGCI SCI CSI ST OSC PM APC`)
)

// controlWords maps mnemonics like <ESC> (in either case) and caret forms
// like ^[ to runes.
var controlWords = make(map[string]rune, 200)

func init() {
	for i, name := range c0Names {
		defineControl(name, rune(i))
	}
	defineControl("SP", 0x20)
	defineControl("DEL", 0x7f)
	for i, name := range c1Names {
		defineControl(name, 0x80+rune(i))
	}
}

func defineControl(name string, r rune) {
	controlWords["<"+name+">"] = r
	controlWords["<"+strings.ToLower(name)+">"] = r
	if caret := CaretForm(r); caret != "" {
		controlWords[caret] = r
	}
}

// ControlName returns the <MNEMONIC> form of a control rune, or "".
func ControlName(r rune) string {
	switch {
	case 0 <= r && int(r) < len(c0Names):
		return "<" + c0Names[r] + ">"
	case r == 0x20:
		return "<SP>"
	case r == 0x7f:
		return "<DEL>"
	case 0x80 <= r && int(r-0x80) < len(c1Names):
		return "<" + c1Names[r-0x80] + ">"
	}
	return ""
}

// CaretForm computes the ^-escaped form of a control rune: ^@ through ^_
// and ^? for C0, ^[@ through ^[_ for C1.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

var errInvalidRune = errors.New(`rune literal must be "^X" "<NAME>" or 'X'`)

// UnquoteRune parses a character literal: a quoted character like 'a' or
// '\n', a control mnemonic like <ESC>, or a caret form like ^[.
func UnquoteRune(token string) (rune, error) {
	if r, defined := controlWords[token]; defined {
		return r, nil
	}
	if len(token) < 3 || token[0] != '\'' || token[len(token)-1] != '\'' {
		return 0, errInvalidRune
	}
	value, _, tail, err := strconv.UnquoteChar(token[1:len(token)-1], '\'')
	if err != nil {
		return 0, err
	}
	if tail != "" {
		return 0, errInvalidRune
	}
	return value, nil
}
