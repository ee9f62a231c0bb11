package resolve

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/go-adoc-refs/pkg/antora"
	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

// NewResolveCommand resolves a symbolic key against the module enclosing a
// document and prints the candidate paths, best first.
func NewResolveCommand() *cobra.Command {
	var (
		file          string
		root          string
		defaultFamily string
	)
	cmd := &cobra.Command{
		Use:   "resolve [key]",
		Short: "Resolve a symbolic key to filesystem paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			absRoot, err := filepath.Abs(root)
			if err != nil {
				return errors.Errorf("resolving project root: %w", err)
			}
			absFile, err := filepath.Abs(file)
			if err != nil {
				return errors.Errorf("resolving document path: %w", err)
			}

			var family antora.Family
			if defaultFamily != "" {
				parsed, ok := antora.ParseFamily(defaultFamily)
				if !ok {
					return errors.Errorf("unknown family %q", defaultFamily)
				}
				family = parsed
			}

			tree := vfs.NewOSTree(filepath.ToSlash(absRoot), vfs.WithExcludes(".git/**", "node_modules/**"))
			fileDir := filepath.ToSlash(filepath.Dir(absFile))

			return tree.View(cmd.Context(), func(ctx context.Context, snap *vfs.Snapshot) error {
				moduleDir, ok := antora.FindModuleDir(tree, tree.Root(), fileDir)
				if !ok {
					// outside any module the key passes through as-is
					cmd.Println(key)
					return nil
				}
				for _, resolved := range antora.ResolveKey(ctx, tree, moduleDir, key, family) {
					cmd.Println(resolved)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path of the document the key appears in")
	cmd.Flags().StringVarP(&root, "root", "r", ".", "project root directory")
	cmd.Flags().StringVar(&defaultFamily, "family", "", "default family when the key names none")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
