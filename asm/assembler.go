// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"context"
	"errors"
	"io"
	"iter"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/lc3asm/internal"
	"github.com/ezrec/lc3asm/isa"
)

// Opcode is an assembled line with its source location.
type Opcode struct {
	LineNo      int             // Source line number, from 1.
	Words       []string        // Source words, after $(...) evaluation.
	Instruction isa.Instruction // Validated instruction.
	Code        isa.Code        // Encoded instruction word.
}

// Assembler is a single pass assembler for the ADD, LD, ST and BR
// instructions. Each line is encoded independently of every other line.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, stop at the first line in error.
	Workers int  // Number of lines encoded concurrently. 0 or 1 encodes in order.

	MaxSteps uint64 // Step budget of each $(...) expression. 0 uses MAX_EXPRESSION_STEPS.
}

// MAX_EXPRESSION_STEPS is the default step budget of a $(...) expression.
const MAX_EXPRESSION_STEPS = 1 << 16

// reExpression matches compile-time $(...) expressions.
var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations. Evaluation stops when
// the step budget runs out or ctx is done.
func (asm *Assembler) parenEval(ctx context.Context, expr string, lineno int) (value int64, err error) {
	thread := &starlark.Thread{Name: "expr"}
	steps := asm.MaxSteps
	if steps == 0 {
		steps = MAX_EXPRESSION_STEPS
	}
	thread.SetMaxExecutionSteps(steps)
	stop := context.AfterFunc(ctx, func() { thread.Cancel("canceled") })
	defer stop()

	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", prog, pred)
	if ctx_err := ctx.Err(); ctx_err != nil {
		err = ctx_err
		return
	}
	if err != nil {
		if asm.Verbose {
			log.Printf("$(%v): %v", expr, err)
		}
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine strips comments, evaluates expressions, and splits a line into
// words. Blank and comment lines have no words.
func (asm *Assembler) parseLine(ctx context.Context, line string, lineno int) (words []string, err error) {
	text, _, _ := strings.Cut(line, ";")
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	text = reExpression.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := asm.parenEval(ctx, str[2:len(str)-1], lineno)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	words = strings.Fields(text)
	return
}

// valueOf returns the value of a decimal integer word.
func valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		// Saturated, so the operand range check rejects it.
		err = nil
	case err != nil:
		err = ErrParseNumber(word)
	}
	return
}

func imm5Of(word string) (imm isa.Imm5, err error) {
	value, err := valueOf(word)
	if err != nil {
		return
	}
	imm, err = isa.MakeImm5(value)
	return
}

func offsetOf(word string) (off isa.PCOffset9, err error) {
	value, err := valueOf(word)
	if err != nil {
		return
	}
	off, err = isa.MakePCOffset9(value)
	return
}

// operands checks that exactly count operands follow the mnemonic.
func operands(args []string, count int) (err error) {
	switch {
	case len(args) < count:
		err = ErrOperandMissing
	case len(args) > count:
		err = &isa.ErrToken{Token: args[count], Err: ErrOperandExtra}
	}
	return
}

// parseAdd parses 'ADD DR SR1 1 IMM5' or 'ADD DR SR1 000 SR2'.
func parseAdd(args []string) (ins isa.Add, err error) {
	if err = operands(args, 4); err != nil {
		return
	}
	if ins.DR, err = isa.ParseRegister(args[0]); err != nil {
		return
	}
	if ins.SR1, err = isa.ParseRegister(args[1]); err != nil {
		return
	}

	switch args[2] {
	case "1":
		var imm isa.Imm5
		if imm, err = imm5Of(args[3]); err != nil {
			return
		}
		ins.Src = isa.AddImmediate{Imm: imm}
	case "000":
		var sr2 isa.Register
		if sr2, err = isa.ParseRegister(args[3]); err != nil {
			return
		}
		ins.Src = isa.AddRegister{SR2: sr2}
	default:
		err = &isa.ErrToken{Token: args[2], Err: ErrInvalidAddFormat}
	}

	return
}

// parseWords evaluates the words of a line into an instruction.
func (asm *Assembler) parseWords(words []string) (ins isa.Instruction, err error) {
	op, ok := isa.ParseMnemonic(words[0])
	if !ok {
		err = &isa.ErrToken{Token: words[0], Err: ErrUnsupportedInstruction}
		return
	}

	args := words[1:]

	switch op {
	case isa.OP_ADD:
		ins, err = parseAdd(args)
	case isa.OP_LD:
		var ld isa.Load
		if err = operands(args, 2); err != nil {
			return
		}
		if ld.DR, err = isa.ParseRegister(args[0]); err != nil {
			return
		}
		if ld.Offset, err = offsetOf(args[1]); err != nil {
			return
		}
		ins = ld
	case isa.OP_ST:
		var st isa.Store
		if err = operands(args, 2); err != nil {
			return
		}
		if st.SR, err = isa.ParseRegister(args[0]); err != nil {
			return
		}
		if st.Offset, err = offsetOf(args[1]); err != nil {
			return
		}
		ins = st
	case isa.OP_BR:
		var br isa.Branch
		if err = operands(args, 2); err != nil {
			return
		}
		if br.Cond, err = isa.ParseNZP(args[0]); err != nil {
			return
		}
		if br.Offset, err = offsetOf(args[1]); err != nil {
			return
		}
		ins = br
	}

	if err != nil {
		ins = nil
	}

	return
}

// Encode assembles a single source line. Blank and comment lines
// return a nil Opcode and no error.
func (asm *Assembler) Encode(line string, lineno int) (op *Opcode, err error) {
	return asm.EncodeContext(context.Background(), line, lineno)
}

// EncodeContext is Encode, abandoning $(...) evaluation when ctx is done.
func (asm *Assembler) EncodeContext(ctx context.Context, line string, lineno int) (op *Opcode, err error) {
	defer func() {
		if err != nil {
			op = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	var words []string
	words, err = asm.parseLine(ctx, line, lineno)
	if err != nil || len(words) == 0 {
		return
	}

	var ins isa.Instruction
	ins, err = asm.parseWords(words)
	if err != nil {
		return
	}

	op = &Opcode{
		LineNo:      lineno,
		Words:       words,
		Instruction: ins,
		Code:        ins.Code(),
	}

	return
}

// Parse parses an input stream into a Program.
//
// Every line is assembled, and the returned Program holds both the encoded
// lines and the per-line errors. The returned error joins the line errors
// with any read error. In Strict mode parsing stops at the first line in
// error.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	return asm.ParseContext(context.Background(), input)
}

// ParseContext is Parse, abandoned when ctx is done.
func (asm *Assembler) ParseContext(ctx context.Context, input io.Reader) (prog *Program, err error) {
	var read_err error

	lines := internal.Lines(input, &read_err)

	prog = &Program{}
	defer func() { prog.ReadErr = read_err }()

	if asm.Workers > 1 {
		err = asm.encodeConcurrent(ctx, prog, lines)
	} else {
		err = asm.encodeInOrder(ctx, prog, lines)
	}
	if err != nil {
		return
	}

	err = errors.Join(append(slices.Clone(prog.Errors), read_err)...)
	return
}

// encodeInOrder encodes lines one at a time.
func (asm *Assembler) encodeInOrder(ctx context.Context, prog *Program, lines iter.Seq2[int, string]) (err error) {
	for lineno, text := range lines {
		if err = ctx.Err(); err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		op, line_err := asm.EncodeContext(ctx, text, lineno)
		if err = ctx.Err(); err != nil {
			return
		}

		if !prog.add(op, line_err) && asm.Strict {
			break
		}
	}

	return
}

// encodeConcurrent encodes lines on up to Workers goroutines, and collects
// the results in source order. In Strict mode, lines after the first line
// in error are skipped, or abandoned if already running.
func (asm *Assembler) encodeConcurrent(ctx context.Context, prog *Program, lines iter.Seq2[int, string]) (err error) {
	type source struct {
		lineno int
		text   string
	}
	type result struct {
		op  *Opcode
		err error
	}

	var sources []source
	for lineno, text := range lines {
		sources = append(sources, source{lineno: lineno, text: text})
	}

	results := make([]result, len(sources))

	var mutex sync.Mutex
	first_fail := len(sources)
	cancels := make([]context.CancelFunc, len(sources))

	group, group_ctx := errgroup.WithContext(ctx)
	group.SetLimit(asm.Workers)
	for n, src := range sources {
		group.Go(func() error {
			if err := group_ctx.Err(); err != nil {
				return err
			}

			mutex.Lock()
			if n > first_fail {
				mutex.Unlock()
				return nil
			}
			line_ctx, cancel := context.WithCancel(group_ctx)
			cancels[n] = cancel
			mutex.Unlock()
			defer cancel()

			if asm.Verbose {
				log.Printf("%v: %v\n", src.lineno, src.text)
			}
			op, line_err := asm.EncodeContext(line_ctx, src.text, src.lineno)
			if err := group_ctx.Err(); err != nil {
				return err
			}
			results[n] = result{op: op, err: line_err}

			if line_err != nil && asm.Strict {
				mutex.Lock()
				if n < first_fail {
					first_fail = n
					for _, later := range cancels[n+1:] {
						if later != nil {
							later()
						}
					}
				}
				mutex.Unlock()
			}
			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return
	}

	for _, res := range results {
		if !prog.add(res.op, res.err) && asm.Strict {
			break
		}
	}

	return
}
