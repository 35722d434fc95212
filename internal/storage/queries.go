package storage

import (
	"fmt"

	"github.com/abrick/brick/internal/engine"
)

// WriteReport replaces the database contents with the given report.
// The whole write happens in one transaction.
func (db *DB) WriteReport(report *engine.DirectoryReport) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM violations; DELETE FROM files;"); err != nil {
		return fmt.Errorf("clear previous report: %w", err)
	}

	insertFile, err := tx.Prepare(
		"INSERT INTO files (path, error_count, warning_count) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertFile.Close()

	insertViolation, err := tx.Prepare(
		"INSERT INTO violations (file_id, rule_id, severity, message, start_line, end_line) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertViolation.Close()

	for _, result := range report.Results {
		res, err := insertFile.Exec(result.FilePath, result.ErrorCount, result.WarningCount)
		if err != nil {
			return fmt.Errorf("insert file %s: %w", result.FilePath, err)
		}
		fileID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, v := range result.Violations {
			if _, err := insertViolation.Exec(fileID, v.RuleID, v.Severity.String(),
				v.Message, v.StartLine, v.EndLine); err != nil {
				return fmt.Errorf("insert violation for %s: %w", result.FilePath, err)
			}
		}
	}

	return tx.Commit()
}

// FileCount returns the number of stored files.
func (db *DB) FileCount() (int64, error) {
	var count int64
	err := db.conn.QueryRow("SELECT COUNT(*) FROM files").Scan(&count)
	return count, err
}

// ViolationCountByRule returns the number of stored violations per rule
// id.
func (db *DB) ViolationCountByRule() (map[string]int64, error) {
	rows, err := db.conn.Query(
		"SELECT rule_id, COUNT(*) FROM violations GROUP BY rule_id ORDER BY rule_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var rule string
		var count int64
		if err := rows.Scan(&rule, &count); err != nil {
			return nil, err
		}
		out[rule] = count
	}
	return out, rows.Err()
}
