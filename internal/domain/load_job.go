package domain

import (
	"errors"
	"strings"
)

type TableRef struct {
	ProjectID string `json:"project_id"`
	DatasetID string `json:"dataset_id"`
	TableID   string `json:"table_id"`
}

func (t TableRef) String() string {
	return t.ProjectID + "." + t.DatasetID + "." + t.TableID
}

// LoadJob describes one bulk load: the source objects and the table they overwrite.
type LoadJob struct {
	SourceObjects []string `json:"source_objects"`
	Destination   TableRef `json:"destination_table"`
}

// TableIDFromObject keeps everything before the first "." of the object name.
// "sales.2024.parquet" therefore maps to "sales", not "sales.2024".
func TableIDFromObject(object string) string {
	id, _, _ := strings.Cut(object, ".")
	return id
}

func (j *LoadJob) Validate() error {
	if len(j.SourceObjects) == 0 {
		return errors.New("source objects are required")
	}

	for _, obj := range j.SourceObjects {
		if obj == "" {
			return errors.New("source object name is empty")
		}
	}

	if j.Destination.ProjectID == "" || j.Destination.DatasetID == "" {
		return errors.New("destination project and dataset are required")
	}

	if j.Destination.TableID == "" {
		return errors.New("destination table is required")
	}

	return nil
}
