package disasm

import (
	"golang.org/x/arch/x86/x86asm"
)

var Arch386 = archX86{mode: 32}
var ArchAMD64 = archX86{mode: 64}

type archX86 struct {
	mode int
}

func (x86 archX86) Name() string {
	if x86.mode == 32 {
		return "386"
	}
	return "amd64"
}

func (x86 archX86) Decode(code []byte) (inst x86asm.Inst, err error) {
	return x86asm.Decode(code, x86.mode)
}

func (x86 archX86) Render(code []byte, pc uint64, symname SymLookup) (lines []Line) {
	var i int
	for i < len(code) {
		inst, err := x86.Decode(code[i:])
		if err != nil || inst.Len < 1 {
			// resync a byte at a time; mergeRaw folds the run
			lines = append(lines, Line{
				PC:  pc + uint64(i),
				Raw: code[i : i+1 : i+1],
			})
			i++
			continue
		}
		lines = append(lines, Line{
			PC:   pc + uint64(i),
			Text: x86asm.GoSyntax(inst, pc+uint64(i), x86asm.SymLookup(symname)),
		})
		i = i + inst.Len
	}
	return mergeRaw(lines)
}
