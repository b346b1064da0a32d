// FILE: lixenwraith/bitflags/doc.go

// Package bitflags provides typesafe bitmask flag sets for Go applications.
// A flag set type is a single integer tagged with a declaration table of named
// bit patterns, so values of different flag types never mix and cost no more
// than the raw integer.
//
// Features:
//   - Set algebra: union, intersection, difference, symmetric difference, complement
//   - Strict, truncating and unchecked conversion from raw integers
//   - Composite and zero-valued flags, signed and unsigned representations
//   - Comparable values usable as map keys, with ordering and hashing
//   - "A | B" text form for fmt, TOML, YAML, JSON and mapstructure decoding
//   - Declaration files (TOML, YAML, JSON) and the bitflagsgen code generator
//
// Quick Start:
//
//	type permDef struct{}
//
//	var permTable = bitflags.NewBuilder[uint8]().
//	    WithName("Perm").
//	    Flag("Read", 1<<0).
//	    Flag("Write", 1<<1).
//	    FlagExpr("ReadWrite", "Read | Write").
//	    MustBuild()
//
//	func (permDef) Table() *bitflags.Table[uint8] { return permTable }
//
//	type Perm = bitflags.Set[uint8, permDef]
//
//	rw := bitflags.MustNamed[uint8, permDef]("ReadWrite")
//	fmt.Println(rw)             // Read | Write | ReadWrite
//	fmt.Printf("%08b\n", rw)    // 00000011
//
//	_, err := bitflags.FromBits[uint8, permDef](0x80)
//	errors.Is(err, bitflags.ErrUnrecognizedBits) // true
//
// Generated Types:
// Most code declares flags in a file and lets bitflagsgen write the table,
// the alias, one variable per flag and wrapper constructors:
//
//	//go:generate go run github.com/lixenwraith/bitflags/cmd/bitflagsgen generate -f perm.toml
//
// Complement:
// Complement and the truncating conversion only ever produce declared bits.
// FromBitsUnchecked is the only way to hold bits outside the all-flags mask;
// such bits survive union, intersection and difference and print as a hex
// residual.
//
// Thread Safety:
// Set values are plain integers and tables are immutable after Build, so both
// can be shared between goroutines freely. The in-place methods on *Set need
// the same synchronization as any other integer write.
package bitflags
