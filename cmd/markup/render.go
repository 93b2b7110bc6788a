package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/attrdoc"
	"github.com/vango-dev/markup/pkg/attrpath"
	"github.com/vango-dev/markup/pkg/html"
)

func attrsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attrs [file]",
		Short: "Render an attribute document",
		Long: `Render a YAML or JSON attribute document as an attribute string.

Boolean and data attributes from markup.yaml are honoured.

Examples:
  markup attrs button.yaml
  echo '{"class": ["btn", "btn-primary"], "disabled": true}' | markup attrs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			attrs, err := decodeInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.NewRenderer().Attributes(attrs))
			return nil
		},
	}
}

func tagCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "tag <builder> [file]",
		Short: "Render an element with a tag builder",
		Long: `Render an element from a tag document with the named builder.

Examples:
  markup tag a link.yaml
  echo 'name: title' | markup tag textInput
  markup tag --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, name := range attrdoc.TagBuilders() {
					fmt.Fprintln(w, name)
				}
				return nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			doc, err := decodeInput(cmd, args[1:])
			if err != nil {
				return err
			}
			out, err := attrdoc.RenderTag(args[0], doc, cfg.NewRenderer())
			if err != nil {
				return err
			}
			fmt.Fprintln(w, out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the available builders")

	return cmd
}

func optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options [file]",
		Short: "Render the option lines of a select document",
		Long: `Render the <option> and <optgroup> lines of a select document.

Example document:
  selection: [b]
  prompt: Pick one
  items:
    a: A
    group:
      b: B`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := decodeInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), attrdoc.SelectDocumentOf(root).Render())
			return nil
		},
	}
}

func pathCmd() *cobra.Command {
	var form string

	cmd := &cobra.Command{
		Use:   "path <expr>",
		Short: "Resolve an attribute expression to an input name and id",
		Long: `Resolve an attribute expression such as "[0]tags[]" against a form name.

Examples:
  markup path title --form Post
  markup path '[0]tags[]' --form Post`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]
			path, err := attrpath.Parse(expr)
			if err != nil {
				return err
			}
			name, err := attrpath.InputName(form, expr)
			if err != nil {
				return err
			}
			id, err := attrpath.InputID(form, expr)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "attribute: %s\n", path.Name)
			if path.Prefix != "" || path.Suffix != "" {
				fmt.Fprintf(w, "prefix:    %s\n", path.Prefix)
				fmt.Fprintf(w, "suffix:    %s\n", path.Suffix)
			}
			fmt.Fprintf(w, "name:      %s\n", name)
			fmt.Fprintf(w, "id:        %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&form, "form", "f", "", "Form name that namespaces the input")

	return cmd
}

func encodeCmd() *cobra.Command {
	var keepEntities bool

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode special characters as HTML entities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := html.Encode(string(data))
			if keepEntities {
				out = html.EncodeKeepEntities(string(data))
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&keepEntities, "keep-entities", "k", false, "Do not encode existing entities again")

	return cmd
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode HTML special character entities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), html.Decode(string(data)))
			return nil
		},
	}
}

// decodeInput reads an attribute document from a file or stdin. File
// errors carry the file name and position.
func decodeInput(cmd *cobra.Command, args []string) (html.Attrs, error) {
	if len(args) > 0 && args[0] != "-" {
		return attrdoc.DecodeFile(args[0])
	}
	data, err := readInput(cmd, nil)
	if err != nil {
		return nil, err
	}
	return attrdoc.DecodeAttrs(data)
}
