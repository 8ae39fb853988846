package devicedesc

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the tokens of a device description.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},

	{Name: "KwDevice", Pattern: `\bdevice\b`},
	{Name: "KwRegister", Pattern: `\bregister\b`},
	{Name: "KwPort", Pattern: `\bport\b`},
	{Name: "KwPin", Pattern: `\bpin\b`},
	{Name: "KwVector", Pattern: `\bvector\b`},
	{Name: "KwDdr", Pattern: `\bddr\b`},
	{Name: "KwOut", Pattern: `\bout\b`},
	{Name: "KwIn", Pattern: `\bin\b`},
	{Name: "KwBit", Pattern: `\bbit\b`},
	{Name: "Width", Pattern: `\bu(8|16)\b`},

	{Name: "Hex", Pattern: `0[xX][0-9A-Fa-f]+`},
	{Name: "Integer", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Semicolon", Pattern: `;`},
})
