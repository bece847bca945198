// Package script runs a sequence of positional list operations described in a
// TOML file.
//
// A script names the initial contents of a list and the operations to apply:
//
//	Initial = ["1", "2", "3"]
//
//	[[Ops]]
//	Op = "insertAt"
//	Index = 1
//	Value = "99"
package script

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/seqs/pkg/list"
	"hop.computer/seqs/pkg/loader"
)

// ErrUnknownOp is returned by Parse when an operation name is not recognized.
var ErrUnknownOp = errors.New("unknown op")

// ErrUnknownField is returned by Parse when a script has keys that are not part
// of the format.
var ErrUnknownField = errors.New("unknown field")

// Operation names, compared case-insensitively.
const (
	OpAppend   = "append"
	OpPrepend  = "prepend"
	OpPopFirst = "popFirst"
	OpPopLast  = "popLast"
	OpGetAt    = "getAt"
	OpSetAt    = "setAt"
	OpInsertAt = "insertAt"
	OpRemoveAt = "removeAt"
)

// aliases maps lowercased names, including the push/pop/shift/unshift
// spellings, to the canonical operation.
var aliases = map[string]string{
	"append":   OpAppend,
	"push":     OpAppend,
	"prepend":  OpPrepend,
	"unshift":  OpPrepend,
	"popfirst": OpPopFirst,
	"shift":    OpPopFirst,
	"poplast":  OpPopLast,
	"pop":      OpPopLast,
	"getat":    OpGetAt,
	"setat":    OpSetAt,
	"insertat": OpInsertAt,
	"removeat": OpRemoveAt,
}

// Op is a single operation. Index and Value are ignored by operations that do
// not take them.
type Op struct {
	Op    string
	Index int
	Value string
}

func (o Op) String() string {
	switch o.Op {
	case OpAppend, OpPrepend:
		return o.Op + "(" + o.Value + ")"
	case OpGetAt, OpRemoveAt:
		return o.Op + "(" + strconv.Itoa(o.Index) + ")"
	case OpSetAt, OpInsertAt:
		return o.Op + "(" + strconv.Itoa(o.Index) + ", " + o.Value + ")"
	default:
		return o.Op + "()"
	}
}

// Script is a parsed script.
type Script struct {
	Initial []string
	Ops     []Op
}

// Step records the outcome of one operation.
type Step struct {
	N      int    // 1-based position in the script
	Op     Op     // operation, with its canonical name
	Result string // value returned by get/pop/remove operations
	Err    error  // non-nil if the operation failed
	After  []string
}

// Result is the outcome of running a Script.
type Result struct {
	Steps []Step
	Final []string
}

// Parse decodes a TOML script and canonicalizes operation names.
func Parse(b []byte) (*Script, error) {
	var s Script
	md, err := toml.Decode(string(b), &s)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(ErrUnknownField, "%q", undecoded[0].String())
	}
	for i := range s.Ops {
		canonical, ok := aliases[strings.ToLower(s.Ops[i].Op)]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownOp, "op %d: %q", i+1, s.Ops[i].Op)
		}
		s.Ops[i].Op = canonical
	}
	return &s, nil
}

var scripts = loader.New(Parse)

// Load reads and parses the script at path. Scripts are cached by path.
func Load(path string) (*Script, error) {
	c, _, err := scripts.LoadOrGet(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load script")
	}
	return c.Parsed, nil
}

// Run builds a list from s.Initial and applies each operation in order. If an
// operation fails, Run stops and returns the steps so far together with the
// error, unless continueOnError is set, in which case the failure is recorded in
// its Step and the script carries on. A failed operation never changes the
// list.
func (s *Script) Run(log logrus.FieldLogger, continueOnError bool) (*Result, error) {
	l := list.New(s.Initial...)
	res := &Result{}
	for i, op := range s.Ops {
		step := Step{N: i + 1, Op: op}
		step.Result, step.Err = apply(l, op)
		step.After = l.ToSlice()
		res.Steps = append(res.Steps, step)

		fields := logrus.Fields{
			"step": step.N,
			"op":   op.String(),
			"len":  l.Len(),
		}
		if step.Err != nil {
			if !continueOnError {
				res.Final = step.After
				return res, errors.Wrapf(step.Err, "step %d: %s", step.N, op)
			}
			log.WithFields(fields).WithError(step.Err).Warn("operation failed, continuing")
			continue
		}
		log.WithFields(fields).Debug("applied")
	}
	res.Final = l.ToSlice()
	return res, nil
}

func apply(l *list.List[string], op Op) (string, error) {
	switch op.Op {
	case OpAppend:
		l.Append(op.Value)
		return "", nil
	case OpPrepend:
		l.Prepend(op.Value)
		return "", nil
	case OpPopFirst:
		return l.PopFirst()
	case OpPopLast:
		return l.PopLast()
	case OpGetAt:
		return l.GetAt(op.Index)
	case OpSetAt:
		return "", l.SetAt(op.Index, op.Value)
	case OpInsertAt:
		return "", l.InsertAt(op.Index, op.Value)
	case OpRemoveAt:
		return l.RemoveAt(op.Index)
	}
	return "", errors.Wrapf(ErrUnknownOp, "%q", op.Op)
}
