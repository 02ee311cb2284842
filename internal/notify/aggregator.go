package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barangay-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Per-source caps. The feed never exceeds 38 items.
const (
	sourceLimit   = 5
	officialLimit = 3
)

// Profile carries the per-user scoping flags the feed is built from. A nil
// YouthID or ResidentID means the user has no such profile.
type Profile struct {
	UserID     uuid.UUID
	YouthID    *uuid.UUID
	ResidentID *uuid.UUID
}

// Sources is the read-only query surface the aggregator pulls from. Each
// method returns records already ordered most-recent first and capped by the
// caller's limit.
type Sources interface {
	ProfileFor(ctx context.Context, userID uuid.UUID) (Profile, error)
	RecentAnnouncements(ctx context.Context, limit int) ([]models.Announcement, error)
	RegisteredParticipations(ctx context.Context, youthID uuid.UUID, limit int) ([]models.Participation, error)
	ProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ApplicationsByYouth(ctx context.Context, youthID uuid.UUID, limit int) ([]models.ScholarshipApplication, error)
	ScholarshipByID(ctx context.Context, id uuid.UUID) (*models.Scholarship, error)
	RecentActivities(ctx context.Context, limit int) ([]models.Activity, error)
	BlottersByComplainant(ctx context.Context, residentID uuid.UUID, limit int) ([]models.Blotter, error)
	RequestsByResident(ctx context.Context, residentID uuid.UUID, limit int) ([]models.DocumentRequestDetail, error)
	FeedbackByResident(ctx context.Context, residentID uuid.UUID, limit int) ([]models.Feedback, error)
	RecentOfficials(ctx context.Context, limit int) ([]models.Official, error)
}

// Service builds the bell feed. It performs no writes; any source failure is
// logged and that source contributes nothing.
type Service struct {
	sources Sources
}

func NewService(sources Sources) *Service {
	return &Service{sources: sources}
}

// Feed computes the notification list for one authenticated user. Items are
// ordered by fixed source priority, then each source's own recency; there is
// no cross-source re-sort.
func (s *Service) Feed(ctx context.Context, userID uuid.UUID) models.NotificationFeed {
	profile, err := s.sources.ProfileFor(ctx, userID)
	if err != nil {
		logrus.Warnf("notification feed: profile lookup failed for %s: %v", userID, err)
		return models.NotificationFeed{Notifications: []models.NotificationItem{}}
	}

	items := []models.NotificationItem{}

	if profile.YouthID != nil {
		items = append(items, s.announcementItems(ctx)...)
		items = append(items, s.participationItems(ctx, *profile.YouthID)...)
		items = append(items, s.applicationItems(ctx, *profile.YouthID)...)
	}

	if profile.ResidentID != nil {
		items = append(items, s.activityItems(ctx)...)
		items = append(items, s.blotterItems(ctx, *profile.ResidentID)...)
		items = append(items, s.requestItems(ctx, *profile.ResidentID)...)
		items = append(items, s.feedbackItems(ctx, *profile.ResidentID)...)
		items = append(items, s.officialItems(ctx)...)
	}

	return models.NotificationFeed{Notifications: items, Count: len(items)}
}

func (s *Service) announcementItems(ctx context.Context) []models.NotificationItem {
	records, err := s.sources.RecentAnnouncements(ctx, sourceLimit)
	if err != nil {
		logrus.Warnf("notification feed: announcements unavailable: %v", err)
		return nil
	}

	var items []models.NotificationItem
	for _, a := range records {
		items = append(items, models.NotificationItem{
			ID:      itemID(models.NotificationAnnouncement, a.ID, a.UpdatedAt, a.CreatedAt),
			Type:    models.NotificationAnnouncement,
			Title:   a.Title,
			Message: Snippet(a.Content),
			Time:    RelativeTime(a.CreatedAt),
			Link:    "/youth/home",
		})
	}
	return items
}

func (s *Service) participationItems(ctx context.Context, youthID uuid.UUID) []models.NotificationItem {
	records, err := s.sources.RegisteredParticipations(ctx, youthID, sourceLimit)
	if err != nil {
		logrus.Warnf("notification feed: participations unavailable: %v", err)
		return nil
	}

	var items []models.NotificationItem
	for _, p := range records {
		project, err := s.sources.ProjectByID(ctx, p.ProjectID)
		if err != nil || project == nil {
			// Project was removed after registration; skip quietly.
			continue
		}

		when := NormalizeDate(project.StartDate)
		if when == "" {
			when = RelativeTime(p.CreatedAt)
		}

		items = append(items, models.NotificationItem{
			ID:      itemID(models.NotificationProject, p.ID, p.UpdatedAt, p.CreatedAt),
			Type:    models.NotificationProject,
			Title:   project.Title,
			Message: Snippet(project.Description),
			Time:    when,
			Link:    "/youth/projects",
		})
	}
	return items
}

func (s *Service) applicationItems(ctx context.Context, youthID uuid.UUID) []models.NotificationItem {
	records, err := s.sources.ApplicationsByYouth(ctx, youthID, sourceLimit)
	if err != nil {
		logrus.Warnf("notification feed: scholarship applications unavailable: %v", err)
		return nil
	}

	var items []models.NotificationItem
	for _, app := range records {
		title := "N/A"
		if scholarship, err := s.sources.ScholarshipByID(ctx, app.ScholarshipID); err == nil && scholarship != nil {
			title = scholarship.Title
		}

		items = append(items, models.NotificationItem{
			ID:      itemID(models.NotificationScholarship, app.ID, app.UpdatedAt, app.CreatedAt),
			Type:    models.NotificationScholarship,
			Title:   title,
			Message: "Application status: " + app.Status,
			Time:    RelativeTime(app.UpdatedAt),
			Link:    "/youth/scholarships",
		})
	}
	return items
}

func (s *Service) activityItems(ctx context.Context) []models.NotificationItem {
	records, err := s.sources.RecentActivities(ctx, sourceLimit)
	if err != nil {
		logrus.Warnf("notification feed: activities unavailable: %v", err)
		return nil
	}

	var items []models.NotificationItem
	for _, a := range records {
		when := a.ActivityDate
		if when == "" {
			when = RelativeTime(a.CreatedAt)
		}

		items = append(items, models.NotificationItem{
			ID:      itemID(models.NotificationActivity, a.ID, a.UpdatedAt, a.CreatedAt),
			Type:    models.NotificationActivity,
			Title:   a.Title,
			Message: Snippet(a.Description),
			Time:    when,
			Link:    "/resident/activities",
		})
	}
	return items
}

func (s *Service) blotterItems(ctx context.Context, residentID uuid.UUID) []models.NotificationItem {
	records, err := s.sources.BlottersByComplainant(ctx, residentID, sourceLimit)
	if err != nil {
		logrus.Warnf("notification feed: blotters unavailable: %v", err)
		return nil
	}

	var items []models.NotificationItem
	for _, b := range records {
		status := b.Status
		if status == "" {
			status = "N/A"
		}

		items = append(items, models.NotificationItem{
			ID:      itemID(models.NotificationBlotter, b.ID, b.UpdatedAt, b.CreatedAt),
			Type:    models.NotificationBlotter,
			Title:   fmt.Sprintf("Blotter Case #%s", shortID(b.ID)),
			Message: "Status: " + status,
			Time:    RelativeTime(b.CreatedAt),
			Link:    "/resident/blotters",
		})
	}
	return items
}

func (s *Service) requestItems(ctx context.Context, residentID uuid.UUID) []models.NotificationItem {
	records, err := s.sources.RequestsByResident(ctx, residentID, sourceLimit)
	if err != nil {
		logrus.Warnf("notification feed: document requests unavailable: %v", err)
		return nil
	}

	var items []models.NotificationItem
	for _, r := range records {
		when := NormalizeDate(r.RequestDate)
		if when == "" {
			when = RelativeTime(r.CreatedAt)
		}

		items = append(items, models.NotificationItem{
			ID:      itemID(models.NotificationDocumentRequest, r.ID, r.UpdatedAt, r.CreatedAt),
			Type:    models.NotificationDocumentRequest,
			Title:   r.DocumentTypeName,
			Message: "Status: " + r.Status,
			Time:    when,
			Link:    "/resident/documents",
		})
	}
	return items
}

func (s *Service) feedbackItems(ctx context.Context, residentID uuid.UUID) []models.NotificationItem {
	records, err := s.sources.FeedbackByResident(ctx, residentID, sourceLimit)
	if err != nil {
		logrus.Warnf("notification feed: feedback unavailable: %v", err)
		return nil
	}

	var items []models.NotificationItem
	for _, f := range records {
		items = append(items, models.NotificationItem{
			ID:      itemID(models.NotificationFeedback, f.ID, f.UpdatedAt, f.CreatedAt),
			Type:    models.NotificationFeedback,
			Title:   capitalize(f.FeedbackType),
			Message: Snippet(f.Message),
			Time:    RelativeTime(f.CreatedAt),
			Link:    "/resident/feedback",
		})
	}
	return items
}

func (s *Service) officialItems(ctx context.Context) []models.NotificationItem {
	records, err := s.sources.RecentOfficials(ctx, officialLimit)
	if err != nil {
		logrus.Warnf("notification feed: officials unavailable: %v", err)
		return nil
	}

	var items []models.NotificationItem
	for _, o := range records {
		when := o.UpdatedAt
		if when.IsZero() {
			when = o.CreatedAt
		}

		items = append(items, models.NotificationItem{
			ID:      itemID(models.NotificationOfficial, o.ID, o.UpdatedAt, o.CreatedAt),
			Type:    models.NotificationOfficial,
			Title:   o.Position + ": " + o.Name,
			Message: "Barangay officials directory was updated",
			Time:    RelativeTime(when),
			Link:    "/resident/officials",
		})
	}
	return items
}

// itemID derives a stable identity from the source record and its last
// modification, so regenerating the feed over unchanged data yields the same
// IDs and clients can deduplicate across polls.
func itemID(typ models.NotificationType, id uuid.UUID, updated, created time.Time) string {
	ts := updated
	if ts.IsZero() {
		ts = created
	}
	return fmt.Sprintf("%s-%s-%d", typ, id, ts.Unix())
}

func shortID(id uuid.UUID) string {
	s := id.String()
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
