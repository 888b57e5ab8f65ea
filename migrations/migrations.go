// Package migrations embeds the schema migration files so they ship inside
// the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Names returns the migration file names in apply order.
func Names() ([]string, error) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
