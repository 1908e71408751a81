package disasm

import (
	"golang.org/x/arch/arm64/arm64asm"
)

var ArchARM64 = archARM64{size: 4} // constant.

type archARM64 struct {
	size int
}

func (arm64 archARM64) Name() string {
	return "arm64"
}

func (arm64 archARM64) Decode(code []byte) (inst arm64asm.Inst, err error) {
	return arm64asm.Decode(code)
}

func (arm64 archARM64) Render(code []byte, pc uint64, symname SymLookup) (lines []Line) {
	var i int
	for i < len(code) {
		step := arm64.size
		if rem := len(code) - i; rem < step {
			step = rem
		}
		inst, err := arm64.Decode(code[i:])
		if err != nil || step < arm64.size {
			lines = append(lines, Line{
				PC:  pc + uint64(i),
				Raw: code[i : i+step : i+step],
			})
			i = i + step
			continue
		}
		lines = append(lines, Line{
			PC:   pc + uint64(i),
			Text: arm64asm.GoSyntax(inst, pc+uint64(i), symname, nil),
		})
		i = i + arm64.size
	}
	return mergeRaw(lines)
}
