package usecase

import "context"

// CatalogCounts are the figures shown on the home page.
type CatalogCounts struct {
	NumBooks              int `json:"num_books"`
	NumInstances          int `json:"num_instances"`
	NumInstancesAvailable int `json:"num_instances_available"`
	NumAuthors            int `json:"num_authors"`
	NumGenre              int `json:"num_genre"`
	// TheBooks counts books whose summary contains the word "The".
	TheBooks int `json:"the_books"`
}

// SummaryRepository computes the catalog counts in storage.
type SummaryRepository interface {
	CatalogCounts(ctx context.Context) (CatalogCounts, error)
}

// SessionRepository is the per-session key/value collaborator, used
// solely for the visit counter.
type SessionRepository interface {
	// Visits returns the stored counter for a session, zero when the
	// session is new.
	Visits(ctx context.Context, sessionID string) (int, error)
	// SetVisits stores the counter, creating the session row if needed.
	SetVisits(ctx context.Context, sessionID string, visits int) error
}

// HomeSummary is CatalogCounts plus the session's running visit count.
type HomeSummary struct {
	CatalogCounts
	NumVisits int `json:"num_visits"`
}

// HomeService assembles the home page summary.
type HomeService struct {
	summary  SummaryRepository
	sessions SessionRepository
}

func NewHomeService(summary SummaryRepository, sessions SessionRepository) *HomeService {
	return &HomeService{summary: summary, sessions: sessions}
}

// Summarize computes the counts and bumps the session's visit counter.
// The counter is read then written; concurrent requests from the same
// session can race, which is acceptable for a cosmetic figure.
func (s *HomeService) Summarize(ctx context.Context, sessionID string) (HomeSummary, error) {
	counts, err := s.summary.CatalogCounts(ctx)
	if err != nil {
		return HomeSummary{}, err
	}
	visits, err := s.sessions.Visits(ctx, sessionID)
	if err != nil {
		return HomeSummary{}, err
	}
	if err := s.sessions.SetVisits(ctx, sessionID, visits+1); err != nil {
		return HomeSummary{}, err
	}
	return HomeSummary{CatalogCounts: counts, NumVisits: visits}, nil
}
