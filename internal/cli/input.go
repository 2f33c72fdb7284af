package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/hasbyte1/go-underscore/treemap"
	"github.com/hasbyte1/go-underscore/vec"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const stdinMarker = "-"

// readDocument loads the input document and applies --path.
func (a *app) readDocument(cmd *cobra.Command) (gjson.Result, error) {
	raw := a.opts.input
	if raw == stdinMarker {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return gjson.Result{}, errors.Wrap(err, "unable to read stdin")
		}
		raw = string(b)
	}

	if !gjson.Valid(raw) {
		return gjson.Result{}, errors.Wrapf(ErrInvalidJSON, "%.40q", raw)
	}

	doc := gjson.Parse(raw)
	if a.opts.path == "" {
		return doc, nil
	}

	doc = doc.Get(a.opts.path)
	if !doc.Exists() {
		return gjson.Result{}, errors.Wrapf(ErrPathNotFound, "%q", a.opts.path)
	}

	return doc, nil
}

// asArray returns the compacted JSON text of every element. Elements are
// compared by that text, so 1 and 1.0 are different values.
func asArray(doc gjson.Result) (vec.Vec[string], error) {
	if !doc.IsArray() {
		return nil, errors.Wrap(ErrNotArray, doc.Type.String())
	}

	return lo.Map(doc.Array(), func(item gjson.Result, _ int) string {
		return compact(item.Raw)
	}), nil
}

// asObject returns the members of doc keyed by name, values as compacted JSON
// text.
func asObject(doc gjson.Result) (treemap.Map[string, string], error) {
	if !doc.IsObject() {
		return nil, errors.Wrap(ErrNotObject, doc.Type.String())
	}

	out := make(treemap.Map[string, string])
	doc.ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = compact(value.Raw)
		return true
	})

	return out, nil
}

// parseValue turns a command-line argument into JSON text. Anything that is
// not valid JSON is taken as a bare string.
func parseValue(arg string) string {
	if gjson.Valid(arg) {
		return compact(arg)
	}
	return quote(arg)
}

func parseValues(args []string) []string {
	return lo.Map(args, func(arg string, _ int) string { return parseValue(arg) })
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidCount, "%q", arg)
	}
	return n, nil
}

// keyOf returns the string form of a JSON value, used where a value becomes a
// map key: strings lose their quotes, everything else keeps its JSON text.
func keyOf(raw string) string {
	return gjson.Parse(raw).String()
}

func compact(raw string) string {
	return string(pretty.Ugly([]byte(raw)))
}

// quote returns s as a JSON string literal. HTML characters are kept as is so
// keys round-trip unchanged.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	lo.Must0(enc.Encode(s))
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
