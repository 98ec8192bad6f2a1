package inventory

import (
	"context"
	"errors"
	"fmt"
)

type ImportResult struct {
	Imported int
	Errors   []string
}

// Import creates one product per row. Rows are numbered from 2, the CSV header being row 1.
// Invalid rows are reported and skipped.
func (s *Service) Import(ctx context.Context, rows []ProductInput) (ImportResult, error) {
	result := ImportResult{Errors: []string{}}

	for i, row := range rows {
		rowNum := i + 2

		_, err := s.Create(ctx, row)
		if err == nil {
			result.Imported++
			continue
		}

		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			return result, fmt.Errorf("row %d: %w", rowNum, err)
		}
		for _, msg := range verrs {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", rowNum, msg))
		}
	}

	return result, nil
}
