package store

import (
	"context"

	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

const defaultClientTimezone = "America/New_York"

// weekdays lists the days a project time limit row can carry.
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const wholeDaySeconds = 24 * 60 * 60

var (
	clientKey       = []string{"clientid"}
	workerKey       = []string{"clientid", "userid"}
	workerInviteKey = []string{"clientid", "invitationid"}
	projectKey      = []string{"clientid", "projectid"}
)

// ApplyClients applies one page of the clients dataset.
func (r *applyRepository) ApplyClients(ctx context.Context, _ models.Scope, items []models.Client) error {
	return r.applyPage(ctx, "clients", len(items), func(ctx context.Context, w *writer) error {
		for _, c := range items {
			if c.Deleted {
				if err := w.delete(ctx, clientsTable, clientKey, c.ClientID); err != nil {
					return err
				}
				continue
			}

			rec := newRecord().
				add("clientid", c.ClientID).
				add("clientname", orDefault(c.ClientName, c.ClientID)).
				add("timezone", orDefault(c.Timezone, defaultClientTimezone))
			if err := w.upsert(ctx, clientsTable, clientKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyWorkers applies one page of a client's workers.
func (r *applyRepository) ApplyWorkers(ctx context.Context, scope models.Scope, items []models.Worker) error {
	return r.applyPage(ctx, "workers", len(items), func(ctx context.Context, w *writer) error {
		for _, wk := range items {
			clientID := orDefault(wk.ClientID, scope.ClientID)
			if wk.Deleted {
				if err := w.delete(ctx, workersTable, workerKey, clientID, wk.UserID); err != nil {
					return err
				}
				continue
			}

			tags, err := stringList(wk.AssignedTags)
			if err != nil {
				return err
			}
			roles, err := stringList(wk.ClientRoles)
			if err != nil {
				return err
			}

			rec := newRecord().
				add("clientid", clientID).
				add("userid", wk.UserID).
				add("firstname", wk.FirstName).
				add("lastname", wk.LastName).
				add("phonenumber", nullString(wk.PhoneNumber)).
				add("email", nullString(wk.Email)).
				add("birthday", nullInt(wk.BirthDay)).
				add("birthmonth", nullInt(wk.BirthMonth)).
				add("accountid", nullString(wk.AccountID)).
				add("assignedtags", tags).
				add("clientroles", roles).
				add("employeeid", nullString(wk.EmployeeID)).
				add("notes", nullString(wk.Notes))
			if err := w.upsert(ctx, workersTable, workerKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyWorkerInvites applies one page of a client's worker invitations.
func (r *applyRepository) ApplyWorkerInvites(ctx context.Context, scope models.Scope, items []models.WorkerInvite) error {
	return r.applyPage(ctx, "workerinvites", len(items), func(ctx context.Context, w *writer) error {
		for _, inv := range items {
			clientID := orDefault(inv.ClientID, scope.ClientID)
			if inv.Deleted {
				if err := w.delete(ctx, workerInvitesTable, workerInviteKey, clientID, inv.InvitationID); err != nil {
					return err
				}
				continue
			}

			rec := newRecord().
				add("clientid", clientID).
				add("invitationid", inv.InvitationID).
				add("userid", nullString(inv.UserID)).
				add("invitinguserid", nullString(inv.InvitingUserID)).
				add("sentts", nullString(inv.SentTS)).
				add("expirets", nullString(inv.ExpireTS)).
				add("invitestate", nullString(inv.InviteState)).
				add("invitecomments", nullString(inv.InviteComments)).
				add("firstname", inv.FirstName).
				add("lastname", inv.LastName).
				add("email", nullString(inv.Email)).
				add("phonenumber", nullString(inv.PhoneNumber)).
				add("acceptedts", nullString(inv.AcceptedTS)).
				add("acceptedaccountid", nullString(inv.AcceptedAccountID)).
				add("rejectedts", nullString(inv.RejectedTS)).
				add("rejectedreason", nullString(inv.RejectedReason)).
				add("cancelledts", nullString(inv.CancelledTS)).
				add("cancelleduserid", nullString(inv.CancelledUserID)).
				add("cancelledreason", nullString(inv.CancelledReason)).
				add("revokedts", nullString(inv.RevokedTS)).
				add("revokeduserid", nullString(inv.RevokedUserID)).
				add("revokedreason", nullString(inv.RevokedReason))
			if err := w.upsert(ctx, workerInvitesTable, workerInviteKey, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyProjects applies one page of a client's projects. Labor attributes,
// break rules and time limits are replaced as a whole, and deleted along
// with a deleted project.
func (r *applyRepository) ApplyProjects(ctx context.Context, scope models.Scope, items []models.Project) error {
	return r.applyPage(ctx, "projects", len(items), func(ctx context.Context, w *writer) error {
		for _, p := range items {
			clientID := orDefault(p.ClientID, scope.ClientID)

			for _, child := range []string{projectLaborAttribsTable, projectBreakRulesTable, projectTimeLimitsTable} {
				if err := w.delete(ctx, child, projectKey, clientID, p.ProjectID); err != nil {
					return err
				}
			}

			if p.Deleted {
				if err := w.delete(ctx, projectsTable, projectKey, clientID, p.ProjectID); err != nil {
					return err
				}
				continue
			}

			if err := r.upsertProject(ctx, w, clientID, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *applyRepository) upsertProject(ctx context.Context, w *writer, clientID string, p models.Project) error {
	overtime, err := stringList(p.OvertimeRules)
	if err != nil {
		return err
	}

	rec := newRecord().
		add("clientid", clientID).
		add("projectid", p.ProjectID).
		add("projectname", orDefault(p.ProjectName, p.ProjectID)).
		add("timezone", nullString(p.Timezone)).
		add("address", nullString(p.Address)).
		add("roundtominutes", p.RoundToMinutes).
		add("startofweek", nullString(p.StartOfWeek)).
		add("overtimerules", overtime).
		add("currencyunit", nullString(p.CurrencyUnit)).
		add("projectstate", nullString(p.ProjectState))
	if err := w.upsert(ctx, projectsTable, projectKey, rec); err != nil {
		return err
	}

	for _, la := range p.LaborAttribs {
		label := orDefault(la.Label, la.ID)
		rec := newRecord().
			add("clientid", clientID).
			add("projectid", p.ProjectID).
			add("laborattribid", la.ID).
			add("label", label).
			add("abbrev", orDefault(la.Abbrev, label)).
			add("type", nullString(la.Type)).
			add("subtype", nullString(la.Subtype)).
			add("isactive", la.IsActive).
			add("parentattribid", nullString(la.ParentAttribID))
		if err := w.upsert(ctx, projectLaborAttribsTable, []string{"clientid", "projectid", "laborattribid"}, rec); err != nil {
			return err
		}
	}

	for idx, br := range p.BreakRules {
		rec := newRecord().
			add("clientid", clientID).
			add("projectid", p.ProjectID).
			add("ruleindex", idx).
			add("limithours", br.LimitHours).
			add("breakhours", br.BreakHours)
		if err := w.upsert(ctx, projectBreakRulesTable, []string{"clientid", "projectid", "ruleindex"}, rec); err != nil {
			return err
		}
	}

	for _, day := range weekdays {
		for _, allowed := range allowedTimes(p.TimeLimits, day) {
			rec := newRecord().
				add("clientid", clientID).
				add("projectid", p.ProjectID).
				add("dayofweek", day).
				add("starttime", secondsToTime(allowed.StartTime)).
				add("endtime", secondsToTime(allowed.EndTime))
			if err := w.upsert(ctx, projectTimeLimitsTable, []string{"clientid", "projectid", "dayofweek", "starttime"}, rec); err != nil {
				return err
			}
		}
	}

	return nil
}

// allowedTimes returns the ranges allowed on day. A day missing from limits
// is allowed entirely.
func allowedTimes(limits []models.TimeLimitDay, day string) []models.TimeLimit {
	for _, d := range limits {
		if d.Day == day {
			return d.AllowedTimes
		}
	}
	return []models.TimeLimit{{StartTime: 0, EndTime: wholeDaySeconds}}
}
