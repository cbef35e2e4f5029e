package pipeline

import (
	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

type Mapper struct {
	projectID string
	datasetID string
}

func NewMapper(projectID, datasetID string) *Mapper {
	return &Mapper{
		projectID: projectID,
		datasetID: datasetID,
	}
}

// Map builds one load job per object, in input order.
func (m *Mapper) Map(objects []string) []*domain.LoadJob {
	jobs := make([]*domain.LoadJob, len(objects))

	for i, obj := range objects {
		jobs[i] = &domain.LoadJob{
			SourceObjects: []string{obj},
			Destination: domain.TableRef{
				ProjectID: m.projectID,
				DatasetID: m.datasetID,
				TableID:   domain.TableIDFromObject(obj),
			},
		}
	}

	return jobs
}
