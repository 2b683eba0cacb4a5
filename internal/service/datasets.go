package service

import (
	"context"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/store"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

// Page limits accepted by the DataPublish API.
const (
	clientsPageLimit = 100
	defaultPageLimit = 1000
)

// Dataset IDs. They key the stored checkpoints and the --datasets filter.
const (
	DatasetClients          = "clients"
	DatasetWorkers          = "workers"
	DatasetWorkerInvites    = "workerinvites"
	DatasetProjects         = "projects"
	DatasetStations         = "stations"
	DatasetTeams            = "teams"
	DatasetWorkersOnProject = "workersonproject"
	DatasetWorkersOnTeam    = "workersonteam"
	DatasetWorkerDetections = "workerdetections"
	DatasetWorkerLabor      = "workerlabor"
	DatasetWeatherConds     = "weatherconds"
	DatasetWeatherAlerts    = "weatheralerts"
)

// Datasets is the registry of every synced dataset.
//
// Clients drives the client scopes and Projects the project scopes of a
// client, through their AfterSync hooks. ClientScoped and ProjectScoped run
// in order for every client and every project respectively.
type Datasets struct {
	Clients       Dataset
	ClientScoped  []Dataset
	Projects      Dataset
	ProjectScoped []Dataset
}

// NewDatasets binds every dataset to its apply method of repo.
func NewDatasets(repo store.ApplyRepository) *Datasets {
	return &Datasets{
		Clients: &Descriptor[models.Client]{
			DatasetID:  DatasetClients,
			Resource:   "Clients",
			ItemsField: "clientUpdates",
			PageLimit:  clientsPageLimit,
			Scope:      ScopeGlobal,
			Apply:      repo.ApplyClients,
			AfterSync: func(ctx context.Context, _ models.Scope) ([]string, error) {
				return repo.ListClientIDs(ctx)
			},
		},
		ClientScoped: []Dataset{
			&Descriptor[models.Worker]{
				DatasetID:  DatasetWorkers,
				Resource:   "Workers",
				ItemsField: "workerUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeClient,
				Apply:      repo.ApplyWorkers,
			},
			&Descriptor[models.WorkerInvite]{
				DatasetID:  DatasetWorkerInvites,
				Resource:   "WorkerInvites",
				ItemsField: "workerInviteUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeClient,
				Apply:      repo.ApplyWorkerInvites,
			},
		},
		Projects: &Descriptor[models.Project]{
			DatasetID:  DatasetProjects,
			Resource:   "Projects",
			ItemsField: "projectUpdates",
			PageLimit:  defaultPageLimit,
			Scope:      ScopeClient,
			Apply:      repo.ApplyProjects,
			AfterSync: func(ctx context.Context, scope models.Scope) ([]string, error) {
				return repo.ListProjectIDs(ctx, scope.ClientID)
			},
		},
		ProjectScoped: []Dataset{
			&Descriptor[models.Station]{
				DatasetID:  DatasetStations,
				Resource:   "Stations",
				ItemsField: "stationUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeProject,
				Apply:      repo.ApplyStations,
			},
			&Descriptor[models.Team]{
				DatasetID:  DatasetTeams,
				Resource:   "Teams",
				ItemsField: "teamUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeProject,
				Apply:      repo.ApplyTeams,
			},
			&Descriptor[models.WorkerOnProject]{
				DatasetID:  DatasetWorkersOnProject,
				Resource:   "WorkersOnProject",
				ItemsField: "workerOnProjectUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeProject,
				Apply:      repo.ApplyWorkersOnProject,
			},
			&Descriptor[models.WorkerOnTeam]{
				DatasetID:  DatasetWorkersOnTeam,
				Resource:   "WorkersOnTeam",
				ItemsField: "workerOnTeamUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeProject,
				Apply:      repo.ApplyWorkersOnTeam,
			},
			&Descriptor[models.WorkerDetection]{
				DatasetID:  DatasetWorkerDetections,
				Resource:   "WorkerDetections",
				ItemsField: "workerDetectionUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeProject,
				Apply:      repo.ApplyWorkerDetections,
			},
			&Descriptor[models.WorkerLabor]{
				DatasetID:  DatasetWorkerLabor,
				Resource:   "WorkerLabor",
				ItemsField: "workerLaborUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeProject,
				Apply:      repo.ApplyWorkerLabor,
			},
			&Descriptor[models.WeatherCondition]{
				DatasetID:  DatasetWeatherConds,
				Resource:   "WeatherConditions",
				ItemsField: "weatherConditionsUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeProject,
				Apply:      repo.ApplyWeatherConditions,
			},
			&Descriptor[models.WeatherAlert]{
				DatasetID:  DatasetWeatherAlerts,
				Resource:   "WeatherAlerts",
				ItemsField: "weatherAlertsUpdates",
				PageLimit:  defaultPageLimit,
				Scope:      ScopeProject,
				Apply:      repo.ApplyWeatherAlerts,
			},
		},
	}
}

// All returns every dataset in sync order.
func (d *Datasets) All() []Dataset {
	all := []Dataset{d.Clients}
	all = append(all, d.ClientScoped...)
	all = append(all, d.Projects)
	return append(all, d.ProjectScoped...)
}

// IDs returns the ID of every dataset in sync order.
func (d *Datasets) IDs() []string {
	all := d.All()
	ids := make([]string, len(all))
	for i, ds := range all {
		ids[i] = ds.ID()
	}
	return ids
}
