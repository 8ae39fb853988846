package devicedesc

import "github.com/alecthomas/participle/v2/lexer"

// File is a parsed device description.
//
//	device atmega32;
//	register PORTA 0x3B u8;
//	port A ddr DDRA out PORTA in PINA;
//	pin LED1 ddr DDRC out PORTC in PINC bit 4;
//	vector INT0 1;
type File struct {
	Device string  `KwDevice @Ident Semicolon`
	Decls  []*Decl `@@*`
}

// Decl is one statement of the description.
type Decl struct {
	Register *RegisterDecl `  @@`
	Port     *PortDecl     `| @@`
	Pin      *PinDecl      `| @@`
	Vector   *VectorDecl   `| @@`
}

// RegisterDecl declares a register at a data-space address.
type RegisterDecl struct {
	Pos     lexer.Position
	Name    string `KwRegister @Ident`
	Address string `@( Hex | Integer )`
	Width   string `@Width Semicolon`
}

// PortDecl declares eight pins named after the port, e.g. A0 to A7.
type PortDecl struct {
	Pos  lexer.Position
	Name string `KwPort @Ident`
	DDR  string `KwDdr @Ident`
	Out  string `KwOut @Ident`
	In   string `KwIn @Ident Semicolon`
}

// PinDecl declares a single pin.
type PinDecl struct {
	Pos  lexer.Position
	Name string `KwPin @Ident`
	DDR  string `KwDdr @Ident`
	Out  string `KwOut @Ident`
	In   string `KwIn @Ident`
	Bit  string `KwBit @Integer Semicolon`
}

// VectorDecl declares an interrupt vector slot.
type VectorDecl struct {
	Pos  lexer.Position
	Name string `KwVector @Ident`
	Slot string `@Integer Semicolon`
}
