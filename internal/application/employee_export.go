package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ExportObjectPath names the object an export taken at t is stored under.
func ExportObjectPath(t time.Time) string {
	return fmt.Sprintf("exports/employees-%s.json", t.UTC().Format("20060102T150405Z"))
}

// ExportEmployees writes every employee to w as a JSON array and returns how many were written.
func (s *Service) ExportEmployees(ctx context.Context, w io.Writer) (int, error) {
	list, err := s.GetAllEmployees(ctx)
	if err != nil {
		return 0, err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return 0, err
	}
	return len(list), nil
}
