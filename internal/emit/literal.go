// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"
)

// Escape doubles every single quote in s. It is the only sanitization the
// emitter applies to free text; no other characters are touched.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Quote renders s as a single-quoted SQL string literal.
func Quote(s string) string {
	return "'" + Escape(s) + "'"
}

// ArrayLiteral renders items as a quoted Postgres array literal such as
// '{"Seed","Series A"}'. Elements are wrapped in double quotes verbatim.
func ArrayLiteral(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = `"` + it + `"`
	}
	return Quote("{" + strings.Join(quoted, ",") + "}")
}

// JSONLiteral marshals v and renders it as a quoted SQL literal. HTML
// characters are left unescaped so the text reads as written.
func JSONLiteral(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", eris.Wrap(err, "emit: marshal json")
	}
	return Quote(strings.TrimSuffix(buf.String(), "\n")), nil
}

// Table sanitizes a schema-qualified table name like "public.profiles".
func Table(name string) string {
	parts := strings.SplitN(name, ".", 2)
	if len(parts) == 2 {
		return pgx.Identifier{parts[0], parts[1]}.Sanitize()
	}
	return pgx.Identifier{name}.Sanitize()
}

// Column sanitizes a single column name.
func Column(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// ColumnList sanitizes and comma-joins column names.
func ColumnList(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = Column(c)
	}
	return strings.Join(quoted, ", ")
}
