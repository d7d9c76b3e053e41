package match

import (
	"context"
	"time"
)

// memStore is an in-memory Store used to exercise the discovery engine
// without a database. Iteration follows insertion order so results are
// deterministic in tests.
type memStore struct {
	order      []int64
	profiles   map[int64]*Profile
	matches    map[int64]map[int64]bool
	crushes    map[int64]map[int64]bool
	received   map[int64][]*ReceivedLike
	nextLikeID int64

	// failWith, when set, is returned by every read to simulate an
	// unavailable store.
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		profiles: make(map[int64]*Profile),
		matches:  make(map[int64]map[int64]bool),
		crushes:  make(map[int64]map[int64]bool),
		received: make(map[int64][]*ReceivedLike),
	}
}

func (m *memStore) add(p *Profile) {
	m.order = append(m.order, p.ID)
	m.profiles[p.ID] = p
}

func (m *memStore) FindByID(_ context.Context, id int64) (*Profile, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	p, ok := m.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (m *memStore) FindByFilter(_ context.Context, filter CandidateFilter) ([]*Profile, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []*Profile
	for _, id := range m.order {
		if p := m.profiles[id]; filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *memStore) FindWithLocationByFilter(_ context.Context, filter CandidateFilter) ([]*Profile, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []*Profile
	for _, id := range m.order {
		if p := m.profiles[id]; p.HasLocation() && filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *memStore) GetRelations(_ context.Context, userID int64) (*Relations, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	rel := &Relations{}
	for id := range m.matches[userID] {
		rel.MatchIDs = append(rel.MatchIDs, id)
	}
	for id := range m.crushes[userID] {
		rel.CrushIDs = append(rel.CrushIDs, id)
	}
	return rel, nil
}

func (m *memStore) CreateLike(_ context.Context, likerID, targetID int64, image, comment *string, dedup bool) error {
	if dedup {
		entries := m.received[targetID][:0]
		for _, e := range m.received[targetID] {
			if e.LikerID != likerID {
				entries = append(entries, e)
			}
		}
		m.received[targetID] = entries
	}

	m.nextLikeID++
	m.received[targetID] = append(m.received[targetID], &ReceivedLike{
		ID:        m.nextLikeID,
		UserID:    targetID,
		LikerID:   likerID,
		Image:     image,
		Comment:   comment,
		CreatedAt: time.Now(),
	})

	if m.crushes[likerID] == nil {
		m.crushes[likerID] = make(map[int64]bool)
	}
	m.crushes[likerID][targetID] = true
	return nil
}

func (m *memStore) CreateMatch(_ context.Context, userID, targetID int64) error {
	for _, pair := range [][2]int64{{userID, targetID}, {targetID, userID}} {
		a, b := pair[0], pair[1]
		if m.matches[a] == nil {
			m.matches[a] = make(map[int64]bool)
		}
		m.matches[a][b] = true
		delete(m.crushes[a], b)

		entries := m.received[a][:0]
		for _, e := range m.received[a] {
			if e.LikerID != b {
				entries = append(entries, e)
			}
		}
		m.received[a] = entries
	}
	return nil
}

func (m *memStore) DeleteLike(_ context.Context, likerID, targetID int64) error {
	entries := m.received[targetID][:0]
	for _, e := range m.received[targetID] {
		if e.LikerID != likerID {
			entries = append(entries, e)
		}
	}
	m.received[targetID] = entries
	delete(m.crushes[likerID], targetID)
	return nil
}

func (m *memStore) ListMatches(_ context.Context, userID int64) ([]*Profile, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []*Profile
	for _, id := range m.order {
		if m.matches[userID][id] {
			result = append(result, m.profiles[id])
		}
	}
	return result, nil
}

func (m *memStore) ListReceivedLikes(_ context.Context, userID int64) ([]*ReceivedLike, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	likes := make([]*ReceivedLike, 0, len(m.received[userID]))
	for _, e := range m.received[userID] {
		copied := *e
		if liker, ok := m.profiles[e.LikerID]; ok {
			copied.Liker = &LikerInfo{ID: liker.ID, FirstName: liker.FirstName, ImageURLs: liker.ImageURLs}
		}
		likes = append(likes, &copied)
	}
	return likes, nil
}
