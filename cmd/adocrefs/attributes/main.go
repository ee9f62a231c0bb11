package attributes

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/go-adoc-refs/pkg/antora"
	"github.com/walteh/go-adoc-refs/pkg/index"
	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

// NewAttributesCommand expands {attribute} placeholders in a string using
// the synthetic attributes of the module enclosing a document.
func NewAttributesCommand() *cobra.Command {
	var (
		file string
		root string
	)
	cmd := &cobra.Command{
		Use:   "attributes [text]",
		Short: "Expand {attribute} placeholders in a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]

			absRoot, err := filepath.Abs(root)
			if err != nil {
				return errors.Errorf("resolving project root: %w", err)
			}
			absFile, err := filepath.Abs(file)
			if err != nil {
				return errors.Errorf("resolving document path: %w", err)
			}

			tree := vfs.NewOSTree(filepath.ToSlash(absRoot), vfs.WithExcludes(".git/**", "node_modules/**"))
			env := antora.Env{
				Tree:       tree,
				Attributes: index.NewInMemory(),
				FileDir:    filepath.ToSlash(filepath.Dir(absFile)),
			}

			return tree.View(cmd.Context(), func(ctx context.Context, snap *vfs.Snapshot) error {
				expanded, ok := antora.ExpandAttributes(ctx, env, text)
				if !ok {
					return errors.Errorf("ambiguous attribute in %q", text)
				}
				cmd.Println(expanded)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path of the document the text appears in")
	cmd.Flags().StringVarP(&root, "root", "r", ".", "project root directory")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
