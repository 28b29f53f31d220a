// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-unaligned/internal/catalog"
)

const header = "// Code generated by wrapgen. DO NOT EDIT.\n\npackage aarch64\n"

var typesTmpl = template.Must(template.New("types").Parse(header + `
import "unsafe"
{{range .}}
// {{.Name}} is a {{.Bits}}-bit NEON register of {{.Lanes}} {{.Elem}} lanes.
type {{.Name}} [{{.Bytes}}]byte

// Lanes returns the lanes of v.
func (v {{.Name}}) Lanes() [{{.Lanes}}]{{.Elem}} {
	return *(*[{{.Lanes}}]{{.Elem}})(unsafe.Pointer(&v))
}

// {{.Name}}FromLanes returns a register holding l.
func {{.Name}}FromLanes(l [{{.Lanes}}]{{.Elem}}) {{.Name}} {
	return *(*{{.Name}})(unsafe.Pointer(&l))
}
{{range .Tuples}}
// {{.Name}} holds {{.Regs}} {{.Reg}} registers.
type {{.Name}} [{{.Regs}}]{{.Reg}}
{{end}}{{end}}`))

var opsTmpl = template.Must(template.New("ops").Parse(header + `
import (
	"unsafe"

	"github.com/ajroetker/go-unaligned/internal/raw"
)
{{range .}}
// {{.GoName}} {{.Doc}}
func {{.GoName}}({{.Params}}){{.Results}} {
{{.Body}}}
{{end}}`))

type tupleView struct {
	Name string
	Reg  string
	Regs int
}

type regView struct {
	Name   string
	Elem   string
	Bits   int
	Bytes  int
	Lanes  int
	Tuples []tupleView
}

func regViews() []regView {
	var views []regView
	for _, e := range catalog.Elems {
		for _, w := range catalog.RegWidths {
			v := regView{
				Name:  catalog.RegType(e, w),
				Elem:  e.Go,
				Bits:  int(w),
				Bytes: w.Bytes(),
				Lanes: w.Bytes() / e.Size,
			}
			for regs := 2; regs <= 4; regs++ {
				v.Tuples = append(v.Tuples, tupleView{
					Name: catalog.TupleType(e, w, regs),
					Reg:  v.Name,
					Regs: regs,
				})
			}
			views = append(views, v)
		}
	}
	return views
}

type opView struct {
	GoName  string
	Doc     string
	Params  string
	Results string
	Body    string
}

func newOpView(op catalog.Op) (opView, error) {
	var (
		mem   = op.MemType()
		val   = op.ValueType()
		bits  = int(op.Class)
		rb    = op.Class.Bytes()
		elem  = op.Elem.Go
		isReg = op.Regs == 1
		v     = opView{GoName: op.GoName()}
	)
	switch {
	case op.Kind == catalog.KindPlain && op.Direction == catalog.Load && isReg:
		v.Doc = fmt.Sprintf("loads a %d-bit register of %s lanes.", bits, elem)
		v.Params = "from *" + mem
		v.Results = " " + val
		v.Body = fmt.Sprintf("\treturn %s(raw.Load%d(unsafe.Pointer(from)))\n", val, rb)
	case op.Kind == catalog.KindPlain && op.Direction == catalog.Store && isReg:
		v.Doc = fmt.Sprintf("stores a %d-bit register of %s lanes.", bits, elem)
		v.Params = "into *" + mem + ", val " + val
		v.Body = fmt.Sprintf("\traw.Store%d(unsafe.Pointer(into), val)\n", rb)
	case op.Kind == catalog.KindMulti && op.Direction == catalog.Load:
		v.Doc = fmt.Sprintf("loads %d consecutive %d-bit registers of %s lanes.", op.Regs, bits, elem)
		v.Params = "from *" + mem
		v.Results = " (r " + val + ")"
		v.Body = fmt.Sprintf("\traw.CopyBlocks(unsafe.Pointer(&r), unsafe.Pointer(from), %d, %d)\n\treturn r\n", op.Regs, rb)
	case op.Kind == catalog.KindMulti && op.Direction == catalog.Store:
		v.Doc = fmt.Sprintf("stores %d %d-bit registers of %s lanes to consecutive memory.", op.Regs, bits, elem)
		v.Params = "into *" + mem + ", val " + val
		v.Body = fmt.Sprintf("\traw.CopyBlocks(unsafe.Pointer(into), unsafe.Pointer(&val), %d, %d)\n", op.Regs, rb)
	case op.Kind == catalog.KindDeinterleave:
		v.Doc = fmt.Sprintf("loads %d-element structures of %s, placing element i of every structure in register i.", op.Regs, elem)
		v.Params = "from *" + mem
		v.Results = " (r " + val + ")"
		v.Body = fmt.Sprintf("\traw.Deinterleave(unsafe.Pointer(&r), unsafe.Pointer(from), %d, %d, %d)\n\treturn r\n", op.Regs, rb, op.Elem.Size)
	case op.Kind == catalog.KindInterleave:
		v.Doc = fmt.Sprintf("stores %d registers of %s lanes as %d-element structures, taking element i of every structure from register i.", op.Regs, elem, op.Regs)
		v.Params = "into *" + mem + ", val " + val
		v.Body = fmt.Sprintf("\traw.Interleave(unsafe.Pointer(into), unsafe.Pointer(&val), %d, %d, %d)\n", op.Regs, rb, op.Elem.Size)
	case op.Kind == catalog.KindDup:
		if isReg {
			v.Doc = fmt.Sprintf("loads one %s into every lane of a %d-bit register.", elem, bits)
		} else {
			v.Doc = fmt.Sprintf("loads one %d-element structure of %s, replicating element i across register i.", op.Regs, elem)
		}
		v.Params = "from *" + mem
		v.Results = " (r " + val + ")"
		v.Body = fmt.Sprintf("\traw.Replicate(unsafe.Pointer(&r), unsafe.Pointer(from), %d, %d, %d)\n\treturn r\n", op.Regs, rb, op.Elem.Size)
	default:
		return opView{}, fmt.Errorf("%s: no rendering for %v %v", op.Name, op.Kind, op.Direction)
	}
	return v, nil
}

// Render returns the formatted source of t.
func Render(t Target) ([]byte, error) {
	var buf bytes.Buffer
	if t.Filter == nil {
		if err := typesTmpl.Execute(&buf, regViews()); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", t.Name, err)
		}
	} else {
		ops := t.Ops()
		if len(ops) == 0 {
			return nil, fmt.Errorf("rendering %s: no ops selected", t.Name)
		}
		views := make([]opView, 0, len(ops))
		for _, op := range ops {
			v, err := newOpView(op)
			if err != nil {
				return nil, fmt.Errorf("rendering %s: %w", t.Name, err)
			}
			views = append(views, v)
		}
		if err := opsTmpl.Execute(&buf, views); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", t.Name, err)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", t.Name, err)
	}
	return src, nil
}

// Generate renders every target into dir concurrently. Each file is
// written to a temporary name and renamed into place, so a failed run
// never leaves a truncated file behind.
func Generate(ctx context.Context, dir string, targets []Target) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	written := make([]string, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := Render(t)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, t.File)
			if err := writeFileAtomic(path, src); err != nil {
				return err
			}
			Logger().Debug("wrote target",
				zap.String("target", t.Name),
				zap.String("path", path),
				zap.Int("bytes", len(src)),
				zap.Int("ops", len(t.Ops())))
			written[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}

func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
