package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-underscore/treemap"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/tidwall/pretty"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

type printer struct {
	w      io.Writer
	format string
	pretty bool
}

func newPrinter(w io.Writer, format string, indent bool) (*printer, error) {
	if format != formatJSON && format != formatTable {
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return &printer{w: w, format: format, pretty: indent}, nil
}

func (p *printer) json(raw string) error {
	b := []byte(raw)
	if p.pretty {
		b = pretty.Pretty(b)
	} else {
		b = append(b, '\n')
	}

	_, err := p.w.Write(b)
	return err
}

func (p *printer) table(header []string, rows [][]string) {
	t := tablewriter.NewWriter(p.w)
	t.SetBorder(false)
	t.SetAutoWrapText(false)
	t.SetHeader(header)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.AppendBulk(rows)
	t.Render()
}

// result is the outcome of a command, rendered in the configured format.
type result interface {
	render(p *printer) error
	size() int
}

// value is a single JSON value that may be absent.
type value struct {
	raw   string
	found bool
}

func (v value) render(p *printer) error {
	raw := v.raw
	if !v.found {
		raw = "null"
	}

	if p.format == formatTable {
		p.table([]string{"Value"}, [][]string{{raw}})
		return nil
	}

	return p.json(raw)
}

func (v value) size() int { return lo.Ternary(v.found, 1, 0) }

// array is a list of JSON values.
type array []string

func (a array) render(p *printer) error {
	if p.format == formatTable {
		p.table([]string{"#", "Value"}, lo.Map(a, func(item string, i int) []string {
			return []string{strconv.Itoa(i), item}
		}))
		return nil
	}

	return p.json("[" + strings.Join(a, ",") + "]")
}

func (a array) size() int { return len(a) }

// object is a JSON object rendered in key order.
type object struct {
	m treemap.Map[string, string]
}

func (o object) render(p *printer) error {
	pairs := o.m.Pairs()

	if p.format == formatTable {
		p.table([]string{"Key", "Value"}, entryRows(pairs))
		return nil
	}

	members := make([]string, len(pairs))
	for i, e := range pairs {
		members[i] = quote(e.Key) + ":" + e.Value
	}

	return p.json("{" + strings.Join(members, ",") + "}")
}

func (o object) size() int { return o.m.Len() }

// pairList is an ordered list of key/value pairs, rendered as a JSON array of
// two-element arrays.
type pairList []lo.Entry[string, string]

func (l pairList) render(p *printer) error {
	if p.format == formatTable {
		p.table([]string{"Key", "Value"}, entryRows(l))
		return nil
	}

	items := lo.Map(l, func(e lo.Entry[string, string], _ int) string {
		return "[" + quote(e.Key) + "," + e.Value + "]"
	})

	return p.json("[" + strings.Join(items, ",") + "]")
}

func (l pairList) size() int { return len(l) }

func entryRows(entries []lo.Entry[string, string]) [][]string {
	return lo.Map(entries, func(e lo.Entry[string, string], _ int) []string {
		return []string{e.Key, e.Value}
	})
}
