package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type importResult struct {
	File  string `json:"file"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Error string `json:"error,omitempty"`
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Add recipe files to the archive",
		Long: `Validate recipe files and store them in the archive. Files that fail to
decode are reported and skipped; the command fails if any file was rejected.

Examples:
  promash import pale-ale.pro porter.pro
  promash import recipes/*.pro --archive-dir ./archive`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFrom(cmd)
			if err != nil {
				return err
			}

			archive, err := rt.openArchive()
			if err != nil {
				return err
			}
			defer archive.Close()

			results := make([]importResult, 0, len(args))
			failed := 0
			for _, path := range args {
				result := importResult{File: path}

				data, err := os.ReadFile(path)
				if err == nil {
					id, file, putErr := archive.Put(data)
					err = putErr
					if err == nil {
						result.ID = id.String()
						result.Name = file.Header.Name
						rt.logger.Info("imported recipe", zap.String("file", path), zap.String("id", result.ID))
					}
				}
				if err != nil {
					failed++
					result.Error = err.Error()
					rt.logger.Warn("import failed", zap.String("file", path), zap.Error(err))
				}
				results = append(results, result)
			}

			if rt.cfg.Format == formatJSON {
				if err := printJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					status := "ok"
					if r.Error != "" {
						status = r.Error
					}
					rows = append(rows, []string{r.File, r.ID, r.Name, status})
				}
				printTable(cmd.OutOrStdout(), []string{"File", "ID", "Name", "Status"}, rows)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be imported", failed, len(args))
			}
			return nil
		},
	}
}
