package cli

import (
	"github.com/hasbyte1/go-underscore/treemap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

type mapFunc func(m treemap.Map[string, string], args []string) (result, error)

func (a *app) mapCommands() []*cobra.Command {
	return []*cobra.Command{
		a.mapping("pick <key>...", "Keep only the given keys", cobra.ArbitraryArgs,
			func(m treemap.Map[string, string], args []string) (result, error) {
				return object{m.Pick(args)}, nil
			}),
		a.mapping("omit <key>...", "Drop the given keys", cobra.ArbitraryArgs,
			func(m treemap.Map[string, string], args []string) (result, error) {
				return object{m.Omit(args)}, nil
			}),
		a.mapping("invert", "Swap keys and values, values become keys by their string form", cobra.NoArgs,
			func(m treemap.Map[string, string], _ []string) (result, error) {
				keyed := make(treemap.Map[string, string], m.Len())
				m.Each(func(k, raw string) {
					keyed[k] = keyOf(raw)
				})

				inverted := treemap.Invert(keyed)
				for k, v := range inverted {
					inverted[k] = quote(v)
				}
				return object{inverted}, nil
			}),
		a.mapping("defaults <object>", "Add the members of object whose keys are missing", cobra.ExactArgs(1),
			func(m treemap.Map[string, string], args []string) (result, error) {
				if !gjson.Valid(args[0]) {
					return nil, errors.Wrap(ErrInvalidJSON, "defaults")
				}
				appends, err := asObject(gjson.Parse(args[0]))
				if err != nil {
					return nil, errors.Wrap(err, "defaults")
				}
				return object{m.Defaults(appends)}, nil
			}),
		a.mapping("pairs", "List [key, value] pairs in key order", cobra.NoArgs,
			func(m treemap.Map[string, string], _ []string) (result, error) {
				return pairList(m.Pairs()), nil
			}),
		a.mapping("keys", "List keys in order", cobra.NoArgs,
			func(m treemap.Map[string, string], _ []string) (result, error) {
				return array(lo.Map(m.Keys(), func(k string, _ int) string { return quote(k) })), nil
			}),
	}
}

func (a *app) mapping(use, short string, args cobra.PositionalArgs, fn mapFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}

			m, err := asObject(doc)
			if err != nil {
				return err
			}

			res, err := fn(m, args)
			if err != nil {
				return err
			}

			return a.emit(cmd, res, m.Len())
		},
	}
}
