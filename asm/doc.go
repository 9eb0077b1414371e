// Package asm turns Rings source text into an executable
// machine.Program.
//
// The pipeline is a chain of lazy sequences: bytes are decoded into
// located UTF-8 characters, characters into tokens, tokens into
// statements, and statements are resolved into instructions by a
// two-pass assembler. Nothing downstream is computed until requested,
// so the first failure anywhere short-circuits the whole chain; every
// error keeps the position of the character that caused it.
package asm
