package cli

import (
	"strconv"

	"github.com/hasbyte1/go-underscore/vec"
	"github.com/spf13/cobra"
)

type sequenceFunc func(items vec.Vec[string], args []string) (result, error)

func (a *app) sequenceCommands() []*cobra.Command {
	return []*cobra.Command{
		a.sequence("first", "Print the first element, null when empty", cobra.NoArgs,
			func(items vec.Vec[string], _ []string) (result, error) {
				raw, ok := items.First()
				return value{raw, ok}, nil
			}),
		a.sequence("last", "Print the last element, null when empty", cobra.NoArgs,
			func(items vec.Vec[string], _ []string) (result, error) {
				raw, ok := items.Last()
				return value{raw, ok}, nil
			}),
		a.sequence("uniq", "Drop duplicates, keeping first occurrences", cobra.NoArgs,
			func(items vec.Vec[string], _ []string) (result, error) {
				return array(items.Uniq()), nil
			}),
		a.sequence("without <value>...", "Drop every element equal to one of the values", cobra.MinimumNArgs(1),
			func(items vec.Vec[string], args []string) (result, error) {
				return array(items.Without(parseValues(args))), nil
			}),
		a.sequence("intersection <value>...", "Keep elements equal to one of the values", cobra.ArbitraryArgs,
			func(items vec.Vec[string], args []string) (result, error) {
				return array(items.Intersection(parseValues(args))), nil
			}),
		a.sequence("union <value>...", "Append the values", cobra.ArbitraryArgs,
			func(items vec.Vec[string], args []string) (result, error) {
				return array(items.Union(parseValues(args))), nil
			}),
		a.sequence("index-of <value>", "Print the index of the first match, null when absent", cobra.ExactArgs(1),
			func(items vec.Vec[string], args []string) (result, error) {
				i, ok := items.IndexOf(parseValue(args[0]))
				return value{strconv.Itoa(i), ok}, nil
			}),
		a.sequence("last-index-of <value>", "Print the index of the last match, null when absent", cobra.ExactArgs(1),
			func(items vec.Vec[string], args []string) (result, error) {
				i, ok := items.LastIndexOf(parseValue(args[0]))
				return value{strconv.Itoa(i), ok}, nil
			}),
		a.sequence("initial <n>", "Keep the first n elements", cobra.ExactArgs(1),
			func(items vec.Vec[string], args []string) (result, error) {
				n, err := parseCount(args[0])
				if err != nil {
					return nil, err
				}
				return array(items.Initial(n)), nil
			}),
		a.sequence("rest <n>", "Drop the first n elements", cobra.ExactArgs(1),
			func(items vec.Vec[string], args []string) (result, error) {
				n, err := parseCount(args[0])
				if err != nil {
					return nil, err
				}
				return array(items.Rest(n)), nil
			}),
		a.sequence("object <value>...", "Zip the elements, as keys, with the values into an object", cobra.ArbitraryArgs,
			func(items vec.Vec[string], args []string) (result, error) {
				keys := make(vec.Vec[string], len(items))
				for i, raw := range items {
					keys[i] = keyOf(raw)
				}
				return object{vec.Object(keys, parseValues(args))}, nil
			}),
	}
}

func (a *app) sequence(use, short string, args cobra.PositionalArgs, fn sequenceFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}

			items, err := asArray(doc)
			if err != nil {
				return err
			}

			res, err := fn(items, args)
			if err != nil {
				return err
			}

			return a.emit(cmd, res, items.Len())
		},
	}
}
