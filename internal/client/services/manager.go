package services

import (
	"context"
	"fmt"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

type ManagerAPI interface {
	PendingSessions(ctx context.Context) (*models.PendingSessions, error)
	SessionDetail(ctx context.Context, id string) (*models.ReviewSession, error)
	ReviewSession(ctx context.Context, id string, decision models.Decision, note string) (*models.ReviewResult, error)
	SessionDocument(ctx context.Context, id string, doc models.DocType) (*models.Document, error)
}

// Manager is the review console for verification sessions. The pending list
// is fetched once; reviewed sessions are dropped locally without re-fetching.
type Manager struct {
	api ManagerAPI

	Sessions []models.ReviewSession
	Open     *models.ReviewSession
	Err      string
}

func NewManager(api ManagerAPI) *Manager {
	return &Manager{api: api}
}

func (m *Manager) Load(ctx context.Context) error {
	p, err := m.api.PendingSessions(ctx)
	if err != nil {
		m.Err = errText(err)
		return err
	}
	m.Sessions, m.Err = p.Sessions, ""
	return nil
}

// Select loads the full detail of one session.
func (m *Manager) Select(ctx context.Context, id string) (*models.ReviewSession, error) {
	s, err := m.api.SessionDetail(ctx, id)
	if err != nil {
		m.Err = errText(err)
		return nil, err
	}
	m.Open, m.Err = s, ""
	return s, nil
}

// Review posts a decision and removes the session from the local list.
func (m *Manager) Review(ctx context.Context, id string, decision models.Decision, note string) (*models.ReviewResult, error) {
	if !decision.Valid() {
		err := common.Invalid(fmt.Sprintf("Unknown decision %q.", decision))
		m.Err = errText(err)
		return nil, err
	}
	res, err := m.api.ReviewSession(ctx, id, decision, note)
	if err != nil {
		m.Err = errText(err)
		return nil, err
	}
	m.remove(id)
	if m.Open != nil && m.Open.ID == id {
		m.Open = nil
	}
	m.Err = ""
	return res, nil
}

func (m *Manager) remove(id string) {
	out := make([]models.ReviewSession, 0, len(m.Sessions))
	for _, s := range m.Sessions {
		if s.ID != id {
			out = append(out, s)
		}
	}
	m.Sessions = out
}

// Document fetches one uploaded document for display.
func (m *Manager) Document(ctx context.Context, id string, doc models.DocType) (*models.Document, error) {
	if !doc.Valid() {
		return nil, common.Invalid(fmt.Sprintf("Unknown document %q.", doc))
	}
	return m.api.SessionDocument(ctx, id, doc)
}
