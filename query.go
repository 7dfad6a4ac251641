package tablesql

import (
	"context"
	"strings"
)

// DefaultTableName is the table a dataset is loaded into when the
// caller does not choose one.
const DefaultTableName = "data"

// Query loads the dataset into a private in-memory SQLite database and
// runs the semicolon-separated statements against it in order. The last
// statement must produce rows; its result becomes the returned dataset,
// with column kinds inferred from the values. Results of earlier
// statements are discarded.
//
// The dataset is loaded under the name "data" unless QueryOptions names
// another table:
//
//	out, err := tablesql.Query(ctx, ds, "SELECT county, SUM(total) FROM data GROUP BY county")
func Query(ctx context.Context, ds *Dataset, query string, opts ...QueryOptions) (*Dataset, error) {
	options := NewQueryOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	statements := splitStatements(query)
	if len(statements) == 0 {
		return nil, ErrNoStatements
	}

	s, err := ephemeralSession(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release()

	if _, err := writeDataset(ctx, s, ds, options.TableName, NewWriteOptions()); err != nil {
		return nil, err
	}

	for _, stmt := range statements[:len(statements)-1] {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return nil, NewErrorContext("query", s.dialect).WithTable(options.TableName).Error(err)
		}
	}

	out, err := queryDataset(ctx, s, statements[len(statements)-1])
	if err != nil {
		return nil, NewErrorContext("query", s.dialect).WithTable(options.TableName).Error(err)
	}
	return out, nil
}

// splitStatements splits script text on semicolons and drops blank
// pieces. Semicolons inside string literals are not recognized; scripts
// containing them should run one statement per call.
func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			statements = append(statements, trimmed)
		}
	}
	return statements
}
