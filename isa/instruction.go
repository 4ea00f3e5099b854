package isa

// Instruction is a validated, typed instruction ready for encoding.
type Instruction interface {
	Opcode() Opcode
	Code() Code
}

// AddMode selects the source of the second ADD operand.
type AddMode int

const (
	ADD_MODE_REGISTER  = AddMode(0) // 000
	ADD_MODE_IMMEDIATE = AddMode(1) // 1
)

// AddSource is the second ADD operand, either AddRegister or AddImmediate.
type AddSource interface {
	Mode() AddMode
}

// AddRegister is a register mode ADD source.
type AddRegister struct {
	SR2 Register
}

func (AddRegister) Mode() AddMode { return ADD_MODE_REGISTER }

// AddImmediate is an immediate mode ADD source.
type AddImmediate struct {
	Imm Imm5
}

func (AddImmediate) Mode() AddMode { return ADD_MODE_IMMEDIATE }

// Add is DR = SR1 + Src. A nil Src encodes as register mode with SR2 of R0,
// so the zero Add is 'ADD R0 R0 000 R0'.
type Add struct {
	DR  Register
	SR1 Register
	Src AddSource
}

func (Add) Opcode() Opcode { return OP_ADD }

func (ins Add) Code() Code {
	switch src := ins.Src.(type) {
	case AddImmediate:
		return MakeCodeAddImmediate(ins.DR, ins.SR1, src.Imm)
	case AddRegister:
		return MakeCodeAddRegister(ins.DR, ins.SR1, src.SR2)
	}
	return MakeCodeAddRegister(ins.DR, ins.SR1, 0)
}

// Load is DR = mem[PC + Offset].
type Load struct {
	DR     Register
	Offset PCOffset9
}

func (Load) Opcode() Opcode { return OP_LD }

func (ins Load) Code() Code {
	return MakeCodeLoad(ins.DR, ins.Offset)
}

// Store is mem[PC + Offset] = SR.
type Store struct {
	SR     Register
	Offset PCOffset9
}

func (Store) Opcode() Opcode { return OP_ST }

func (ins Store) Code() Code {
	return MakeCodeStore(ins.SR, ins.Offset)
}

// Branch jumps to PC + Offset when any condition in Cond is set.
type Branch struct {
	Cond   NZP
	Offset PCOffset9
}

func (Branch) Opcode() Opcode { return OP_BR }

func (ins Branch) Code() Code {
	return MakeCodeBranch(ins.Cond, ins.Offset)
}
