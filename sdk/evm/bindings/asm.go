package bindings

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/core/vm"
)

// program is a minimal EVM assembler. Jump targets and code offsets are referenced by label and
// resolved in assemble; label references are always encoded as PUSH2 so that positions do not
// shift during resolution.
type program struct {
	code   []byte
	labels map[string]int
	refs   []labelRef
}

type labelRef struct {
	pos    int
	label  string
	addend int
}

func newProgram() *program {
	return &program{labels: make(map[string]int)}
}

func (p *program) op(ops ...vm.OpCode) *program {
	for _, o := range ops {
		p.code = append(p.code, byte(o))
	}

	return p
}

// push emits the narrowest PUSHn holding v.
func (p *program) push(v uint64) *program {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)

	b := bytes.TrimLeft(buf[:], "\x00")
	if len(b) == 0 {
		b = []byte{0}
	}

	return p.pushBytes(b)
}

// pushBytes emits PUSHn for a 1 to 32 byte immediate, kept as is.
func (p *program) pushBytes(b []byte) *program {
	if len(b) == 0 || len(b) > 32 {
		panic(fmt.Sprintf("invalid push width %d", len(b)))
	}

	p.code = append(p.code, byte(vm.PUSH1)+byte(len(b)-1))
	p.code = append(p.code, b...)

	return p
}

// mark records the current offset under label without emitting code.
func (p *program) mark(label string) *program {
	p.labels[label] = len(p.code)

	return p
}

// jumpdest marks a jump target.
func (p *program) jumpdest(label string) *program {
	return p.mark(label).op(vm.JUMPDEST)
}

// pushLabel emits PUSH2 with the offset of label plus addend.
func (p *program) pushLabel(label string, addend int) *program {
	p.code = append(p.code, byte(vm.PUSH2))
	p.refs = append(p.refs, labelRef{pos: len(p.code), label: label, addend: addend})
	p.code = append(p.code, 0, 0)

	return p
}

func (p *program) assemble() ([]byte, error) {
	out := bytes.Clone(p.code)
	for _, ref := range p.refs {
		at, ok := p.labels[ref.label]
		if !ok {
			return nil, fmt.Errorf("undefined label %q", ref.label)
		}

		v := at + ref.addend
		if v < 0 || v > math.MaxUint16 {
			return nil, fmt.Errorf("label %q offset %d out of range", ref.label, v)
		}
		binary.BigEndian.PutUint16(out[ref.pos:], uint16(v))
	}

	return out, nil
}
