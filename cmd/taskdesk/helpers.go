// Shared helpers for taskdesk CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dmaldon/taskdesk/internal/sqlite"
	"github.com/dmaldon/taskdesk/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	logger.Debug("backend attached", zap.String("data_dir", dataDir))
	return backend, nil
}

// fail prints the error on stderr and exits with a code matching its kind:
// validation and lookup problems are user errors, everything else is a
// system error.
func fail(prefix string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
	os.Exit(exitCode(err))
}

// exitCode classifies an error as a user mistake or a system failure.
func exitCode(err error) int {
	var verr *types.ValidationError
	var rerr *types.ReferentialIntegrityError
	if errors.Is(err, types.ErrNotFound) || errors.As(err, &verr) || errors.As(err, &rerr) {
		return exitUserError
	}
	return exitSysError
}

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// parseID converts a numeric CLI argument into an entity id.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// resolveCategoryName maps a category name to an id reference for task
// params and patches. Unknown names produce a ValidationError listing the
// known categories.
func resolveCategoryName(backend *sqlite.Backend, name string) (*int64, error) {
	cat, err := backend.GetCategoryByName(name)
	if err == nil {
		return &cat.ID, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("look up category: %w", err)
	}

	cats, err := backend.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return nil, types.NewValidationError("category",
		fmt.Sprintf("unknown category %q (valid: %s)", name, strings.Join(names, ", ")))
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// formatCell renders an optional value in tabular output, "-" when unset.
func formatCell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
