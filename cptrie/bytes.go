package cptrie

import "encoding/binary"

func readU16LE(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func readU32LE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func writeU16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func writeU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

func appendU32LE(b []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(b, v) }
