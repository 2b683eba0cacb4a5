package store

import (
	"context"

	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

var (
	stationKey             = []string{"clientid", "projectid", "stationid"}
	teamKey                = []string{"clientid", "projectid", "teamcompanyid"}
	workerOnProjectKey     = []string{"clientid", "projectid", "userid"}
	workerOnProjectTimeKey = []string{"clientid", "projectid", "userid", "startts"}
	workerOnTeamKey        = []string{"clientid", "projectid", "teamcompanyid", "userid"}
	workerOnTeamTimeKey    = []string{"clientid", "projectid", "teamcompanyid", "userid", "startts"}
	workerTimeKey          = []string{"clientid", "projectid", "teamcompanyid", "userid", "startts"}
	weatherConditionKey    = []string{"clientid", "projectid", "conditiontime"}
	weatherAlertKey        = []string{"clientid", "projectid", "alertid"}
)

// ApplyStations applies one page of a project's stations.
func (r *applyRepository) ApplyStations(ctx context.Context, scope models.Scope, items []models.Station) error {
	return r.applyPage(ctx, "stations", len(items), func(ctx context.Context, w *writer) error {
		for _, s := range items {
			clientID, projectID := scopedKey(scope, s.ClientID, s.ProjectID)
			if s.Deleted {
				if err := w.delete(ctx, stationsTable, stationKey, clientID, projectID, s.StationID); err != nil {
					return err
				}
				continue
			}

			var loiter *int
			if s.LoiterLimits != nil {
				loiter = s.LoiterLimits.TimeLimit
			}

			rec := newRecord().
				add("clientid", clientID).
				add("projectid", projectID).
				add("stationid", s.StationID).
				add("stationname", orDefault(s.StationName, s.StationID)).
				add("isactive", s.IsActive).
				add("stationsensorid", nullString(s.StationSensorID)).
				add("aliasstationid", nullString(s.AliasStationID)).
				add("minssi", nullInt(s.MinSSI)).
				add("gatewayid", nullString(s.GatewayID)).
				add("latitude", nullFloat(s.Latitude)).
				add("longitude", nullFloat(s.Longitude)).
				add("isoffsite", s.IsOffSite).
				add("ssigainoffset", nullInt(s.SSIGainOffset)).
				add("loitertimelimit", nullInt(loiter)).
				add("isonline", s.IsOnline)
			if err := w.upsert(ctx, stationsTable, stationKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyTeams applies one page of a project's teams.
func (r *applyRepository) ApplyTeams(ctx context.Context, scope models.Scope, items []models.Team) error {
	return r.applyPage(ctx, "teams", len(items), func(ctx context.Context, w *writer) error {
		for _, t := range items {
			clientID, projectID := scopedKey(scope, t.ClientID, t.ProjectID)
			if t.Deleted {
				if err := w.delete(ctx, teamsTable, teamKey, clientID, projectID, t.TeamCompanyID); err != nil {
					return err
				}
				continue
			}

			rec := newRecord().
				add("clientid", clientID).
				add("projectid", projectID).
				add("teamcompanyid", t.TeamCompanyID).
				add("teamcompanyname", nullString(t.TeamCompanyName)).
				add("teamtrade", nullString(t.TeamTrade))
			if err := w.upsert(ctx, teamsTable, teamKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyWorkersOnProject applies one page of a project's workers. Assigned
// times are replaced as a whole.
func (r *applyRepository) ApplyWorkersOnProject(ctx context.Context, scope models.Scope, items []models.WorkerOnProject) error {
	return r.applyPage(ctx, "workersonproject", len(items), func(ctx context.Context, w *writer) error {
		for _, wp := range items {
			clientID, projectID := scopedKey(scope, wp.ClientID, wp.ProjectID)

			if err := w.delete(ctx, workersOnProjectAssignedTimesTable, workerOnProjectKey, clientID, projectID, wp.UserID); err != nil {
				return err
			}
			if wp.Deleted {
				if err := w.delete(ctx, workersOnProjectTable, workerOnProjectKey, clientID, projectID, wp.UserID); err != nil {
					return err
				}
				continue
			}

			roles, err := stringList(wp.ProjectRoles)
			if err != nil {
				return err
			}
			labor, err := laborValues(wp.LaborValues)
			if err != nil {
				return err
			}

			rec := newRecord().
				add("clientid", clientID).
				add("projectid", projectID).
				add("userid", wp.UserID).
				add("firstname", wp.FirstName).
				add("lastname", wp.LastName).
				add("title", nullString(wp.Title)).
				add("projectroles", roles).
				add("laborvalues", labor)
			if err := w.upsert(ctx, workersOnProjectTable, workerOnProjectKey, rec); err != nil {
				return err
			}

			for _, at := range wp.AssignedTimes {
				rec := newRecord().
					add("clientid", clientID).
					add("projectid", projectID).
					add("userid", wp.UserID).
					add("startts", at.StartTS).
					add("endts", nullString(at.EndTS))
				if err := w.upsert(ctx, workersOnProjectAssignedTimesTable, workerOnProjectTimeKey, rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ApplyWorkersOnTeam applies one page of a project's team memberships.
// Assigned times are replaced as a whole.
func (r *applyRepository) ApplyWorkersOnTeam(ctx context.Context, scope models.Scope, items []models.WorkerOnTeam) error {
	return r.applyPage(ctx, "workersonteam", len(items), func(ctx context.Context, w *writer) error {
		for _, wt := range items {
			clientID, projectID := scopedKey(scope, wt.ClientID, wt.ProjectID)
			key := []any{clientID, projectID, wt.TeamCompanyID, wt.UserID}

			if err := w.delete(ctx, workersOnTeamAssignedTimesTable, workerOnTeamKey, key...); err != nil {
				return err
			}
			if wt.Deleted {
				if err := w.delete(ctx, workersOnTeamTable, workerOnTeamKey, key...); err != nil {
					return err
				}
				continue
			}

			rec := newRecord().
				add("clientid", clientID).
				add("projectid", projectID).
				add("teamcompanyid", wt.TeamCompanyID).
				add("userid", wt.UserID).
				add("firstname", wt.FirstName).
				add("lastname", wt.LastName)
			if err := w.upsert(ctx, workersOnTeamTable, workerOnTeamKey, rec); err != nil {
				return err
			}

			for _, at := range wt.AssignedTimes {
				rec := newRecord().
					add("clientid", clientID).
					add("projectid", projectID).
					add("teamcompanyid", wt.TeamCompanyID).
					add("userid", wt.UserID).
					add("startts", at.StartTS).
					add("endts", nullString(at.EndTS))
				if err := w.upsert(ctx, workersOnTeamAssignedTimesTable, workerOnTeamTimeKey, rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ApplyWorkerDetections applies one page of a project's worker detections.
func (r *applyRepository) ApplyWorkerDetections(ctx context.Context, scope models.Scope, items []models.WorkerDetection) error {
	return r.applyPage(ctx, "workerdetections", len(items), func(ctx context.Context, w *writer) error {
		for _, d := range items {
			clientID, projectID := scopedKey(scope, d.ClientID, d.ProjectID)
			if d.Deleted {
				if err := w.delete(ctx, workerDetectionsTable, workerTimeKey, clientID, projectID, d.TeamCompanyID, d.UserID, d.StartTS); err != nil {
					return err
				}
				continue
			}

			labor, err := laborValues(d.LaborValues)
			if err != nil {
				return err
			}
			ranges, err := locationRanges(d.Ranges)
			if err != nil {
				return err
			}

			rec := newRecord().
				add("clientid", clientID).
				add("projectid", projectID).
				add("teamcompanyid", d.TeamCompanyID).
				add("userid", d.UserID).
				add("startts", d.StartTS).
				add("endts", nullString(d.EndTS)).
				add("projectdate", nullString(d.ProjectDate)).
				add("laborvalues", labor).
				add("lastlocationid", nullString(d.LastLocationID)).
				add("lastlocationts", nullString(d.LastLocationTS)).
				add("locationranges", ranges)
			if err := w.upsert(ctx, workerDetectionsTable, workerTimeKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyWorkerLabor applies one page of a project's worker labor records.
func (r *applyRepository) ApplyWorkerLabor(ctx context.Context, scope models.Scope, items []models.WorkerLabor) error {
	return r.applyPage(ctx, "workerlabor", len(items), func(ctx context.Context, w *writer) error {
		for _, l := range items {
			clientID, projectID := scopedKey(scope, l.ClientID, l.ProjectID)
			if l.Deleted {
				if err := w.delete(ctx, workerLaborTable, workerTimeKey, clientID, projectID, l.TeamCompanyID, l.UserID, l.StartTS); err != nil {
					return err
				}
				continue
			}

			labor, err := laborValues(l.LaborValues)
			if err != nil {
				return err
			}

			rec := newRecord().
				add("clientid", clientID).
				add("projectid", projectID).
				add("teamcompanyid", l.TeamCompanyID).
				add("userid", l.UserID).
				add("startts", l.StartTS).
				add("endts", nullString(l.EndTS)).
				add("projectdate", nullString(l.ProjectDate)).
				add("laborvalues", labor).
				add("closedts", nullString(l.ClosedTS)).
				add("lasteditts", nullString(l.LastEditTS)).
				add("lastedituserid", nullString(l.LastEditUserID)).
				add("lasteditnotes", nullString(l.LastEditNotes)).
				add("checkints", nullString(l.CheckInTS)).
				add("checkinuserid", nullString(l.CheckInUserID)).
				add("checkoutts", nullString(l.CheckOutTS)).
				add("checkoutuserid", nullString(l.CheckOutUserID)).
				add("verifiedts", nullString(l.VerifiedTS)).
				add("verifieduserid", nullString(l.VerifiedUserID)).
				add("checkinstatus", nullString(l.CheckInStatus))
			if err := w.upsert(ctx, workerLaborTable, workerTimeKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyWeatherConditions applies one page of a project's weather readings.
func (r *applyRepository) ApplyWeatherConditions(ctx context.Context, scope models.Scope, items []models.WeatherCondition) error {
	return r.applyPage(ctx, "weatherconds", len(items), func(ctx context.Context, w *writer) error {
		for _, c := range items {
			clientID, projectID := scopedKey(scope, c.ClientID, c.ProjectID)
			if c.Deleted {
				if err := w.delete(ctx, weatherConditionsTable, weatherConditionKey, clientID, projectID, c.ConditionTime); err != nil {
					return err
				}
				continue
			}

			rec := newRecord().
				add("clientid", clientID).
				add("projectid", projectID).
				add("conditiontime", c.ConditionTime).
				add("actualtime", nullString(c.ActualTime)).
				add("tempf", nullFloat(c.TempF)).
				add("feelslikef", nullFloat(c.FeelsLikeF)).
				add("dewpointf", nullFloat(c.DewPointF)).
				add("humiditypct", nullFloat(c.HumidityPct)).
				add("precipinches", nullFloat(c.PrecipInches)).
				add("snowdepthinches", nullFloat(c.SnowDepthInches)).
				add("pressuremillibars", nullFloat(c.PressureMilliBars)).
				add("winddirdeg", nullFloat(c.WindDirDeg)).
				add("winddir", nullString(c.WindDir)).
				add("windspeedmph", nullFloat(c.WindSpeedMPH)).
				add("windgustmph", nullFloat(c.WindGustMPH)).
				add("skypercent", nullFloat(c.SkyPercent)).
				add("cloudscoded", nullString(c.CloudsCoded)).
				add("weather", nullString(c.Weather)).
				add("weatherprimarycoded", nullString(c.WeatherPrimaryCoded)).
				add("icon", nullString(c.Icon)).
				add("iconurl", nullString(c.IconURL)).
				add("bigiconurl", nullString(c.BigIconURL)).
				add("visibilitymiles", nullFloat(c.VisibilityMiles)).
				add("uvindex", nullFloat(c.UVIndex)).
				add("solarradiationwm2", nullFloat(c.SolarRadiationWM2)).
				add("ceilingft", nullFloat(c.CeilingFt)).
				add("isday", c.IsDay).
				add("closeststationid", nullString(c.ClosestStationID))
			if err := w.upsert(ctx, weatherConditionsTable, weatherConditionKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyWeatherAlerts applies one page of a project's weather alerts.
func (r *applyRepository) ApplyWeatherAlerts(ctx context.Context, scope models.Scope, items []models.WeatherAlert) error {
	return r.applyPage(ctx, "weatheralerts", len(items), func(ctx context.Context, w *writer) error {
		for _, a := range items {
			clientID, projectID := scopedKey(scope, a.ClientID, a.ProjectID)
			if a.Deleted {
				if err := w.delete(ctx, weatherAlertsTable, weatherAlertKey, clientID, projectID, a.ID); err != nil {
					return err
				}
				continue
			}

			polygon := a.Polygon
			if polygon == nil {
				polygon = []models.GeoPoint{}
			}
			poly, err := jsonText(polygon)
			if err != nil {
				return err
			}
			geocodes, err := stringList(a.GeocodeUGSList)
			if err != nil {
				return err
			}

			rec := newRecord().
				add("clientid", clientID).
				add("projectid", projectID).
				add("alertid", a.ID).
				add("areadesc", nullString(a.AreaDesc)).
				add("sentts", nullString(a.SentTS)).
				add("effectivets", nullString(a.EffectiveTS)).
				add("onsetts", nullString(a.OnsetTS)).
				add("expirests", nullString(a.ExpiresTS)).
				add("endsts", nullString(a.EndsTS)).
				add("severity", nullString(a.Severity)).
				add("certainty", nullString(a.Certainty)).
				add("urgency", nullString(a.Urgency)).
				add("event", nullString(a.Event)).
				add("sendername", nullString(a.SenderName)).
				add("headline", nullString(a.Headline)).
				add("description", nullString(a.Description)).
				add("instruction", nullString(a.Instruction)).
				add("response", nullString(a.Response)).
				add("polygon", poly).
				add("geocodeugslist", geocodes).
				add("replacedby", nullString(a.ReplacedBy)).
				add("replacedts", nullString(a.ReplacedTS)).
				add("lastactivets", nullString(a.LastActiveTS)).
				add("isactive", a.IsActive)
			if err := w.upsert(ctx, weatherAlertsTable, weatherAlertKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// scopedKey falls back to the scope IDs for empty item key fields.
func scopedKey(scope models.Scope, clientID, projectID string) (string, string) {
	return orDefault(clientID, scope.ClientID), orDefault(projectID, scope.ProjectID)
}
