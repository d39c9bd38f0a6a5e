package plan

import (
	"fmt"
	"os"
)

// DoctorStatus classifies the health of one installed file.
type DoctorStatus string

const (
	StatusOK       DoctorStatus = "ok"
	StatusMissing  DoctorStatus = "missing"
	StatusModified DoctorStatus = "modified"
)

// DoctorFinding reports the state of a single installed file.
type DoctorFinding struct {
	Component string       `json:"component"`
	FilePath  string       `json:"file_path"`
	Status    DoctorStatus `json:"status"`
	Detail    string       `json:"detail,omitempty"`
}

// DoctorReport aggregates findings across all installed components.
type DoctorReport struct {
	Findings []DoctorFinding `json:"findings"`
}

// Healthy reports whether every checked file is intact.
func (r *DoctorReport) Healthy() bool {
	for _, f := range r.Findings {
		if f.Status != StatusOK {
			return false
		}
	}
	return true
}

// Problems returns only the findings that are not OK.
func (r *DoctorReport) Problems() []DoctorFinding {
	var problems []DoctorFinding
	for _, f := range r.Findings {
		if f.Status != StatusOK {
			problems = append(problems, f)
		}
	}
	return problems
}

// Doctor verifies every installed component's files against the checksums
// recorded at install time. Missing files and checksum mismatches are
// reported; nothing is repaired.
func Doctor(store *Store) (*DoctorReport, error) {
	records, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("list installs: %w", err)
	}

	report := &DoctorReport{}
	for _, record := range records {
		for _, path := range record.Files {
			finding := DoctorFinding{Component: record.Component, FilePath: path}
			data, err := os.ReadFile(path)
			switch {
			case os.IsNotExist(err):
				finding.Status = StatusMissing
				finding.Detail = "installed file is missing"
			case err != nil:
				finding.Status = StatusMissing
				finding.Detail = err.Error()
			default:
				want, tracked := record.Checksums[path]
				got := Checksum(string(data))
				if tracked && got != want {
					finding.Status = StatusModified
					finding.Detail = fmt.Sprintf("checksum %s, expected %s", got, want)
				} else {
					finding.Status = StatusOK
				}
			}
			report.Findings = append(report.Findings, finding)
		}
	}
	return report, nil
}
