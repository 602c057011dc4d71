// Command crudgen scaffolds model-specific template files from the bundled
// generic templates.
//
// Usage:
//
//	crudgen mktemplate bookmark
//	crudgen mktemplate bookmark --list --detail
//	crudgen mktemplate bookmark --dir web/templates
//
// Each generated file lands at <dir>/<model><suffix>.html and is picked up
// by the renderer ahead of the generic fallback.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/crud"
	"github.com/dmitrymomot/crud/pkg/render"
)

var (
	genDir    string
	genList   bool
	genDetail bool
	genCreate bool
	genUpdate bool
	genDelete bool
)

var rootCmd = &cobra.Command{
	Use:          "crudgen",
	Short:        "Scaffolding for crud resources",
	SilenceUsage: true,
}

var mktemplateCmd = &cobra.Command{
	Use:   "mktemplate <model>",
	Short: "Copy starter templates for a model into the templates directory",
	Long: `Copy the bundled generic templates into model-specific files.

The model argument is the lowercased type name, the same value the resource
uses as its URL base. Role flags limit which templates are generated; with
no role flags every enabled role gets one.`,
	Args: cobra.ExactArgs(1),
	RunE: runMktemplate,
}

func init() {
	mktemplateCmd.Flags().StringVar(&genDir, "dir", "templates", "target directory for generated templates")
	mktemplateCmd.Flags().BoolVar(&genList, "list", false, "generate the list template")
	mktemplateCmd.Flags().BoolVar(&genDetail, "detail", false, "generate the detail template")
	mktemplateCmd.Flags().BoolVar(&genCreate, "create", false, "generate the create form template")
	mktemplateCmd.Flags().BoolVar(&genUpdate, "update", false, "generate the update form template")
	mktemplateCmd.Flags().BoolVar(&genDelete, "delete", false, "generate the delete confirmation template")
	rootCmd.AddCommand(mktemplateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMktemplate(cmd *cobra.Command, args []string) error {
	model := strings.ToLower(args[0])
	if model == "" {
		return fmt.Errorf("model name must not be empty")
	}

	roles := selectedRoles()
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", genDir, err)
	}

	// Distinct suffixes only: create and update share the form template.
	seen := make(map[string]bool, len(roles))
	for _, role := range roles {
		suffix := role.TemplateSuffix()
		if seen[suffix] {
			continue
		}
		seen[suffix] = true

		src, err := render.StarterTemplate(suffix)
		if err != nil {
			return err
		}

		path := filepath.Join(genDir, model+suffix+".html")
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "skip %s (exists)\n", path)
			continue
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}

func selectedRoles() []crud.Role {
	flags := map[crud.Role]bool{
		crud.RoleList:   genList,
		crud.RoleDetail: genDetail,
		crud.RoleCreate: genCreate,
		crud.RoleUpdate: genUpdate,
		crud.RoleDelete: genDelete,
	}
	var roles []crud.Role
	for _, role := range crud.AllRoles {
		if flags[role] {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		return crud.AllRoles
	}
	return roles
}
